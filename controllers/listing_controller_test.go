package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchpoint_server/services"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyStoreStub answers every read with "nothing there" and accepts every
// write, which is all these handler tests need.
type emptyStoreStub struct{}

func (emptyStoreStub) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}
func (emptyStoreStub) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}
func (emptyStoreStub) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}
func (emptyStoreStub) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}
func (emptyStoreStub) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}
func (emptyStoreStub) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}
func (emptyStoreStub) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return &dynamodb.BatchWriteItemOutput{}, nil
}
func (emptyStoreStub) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func newListingRouter() *mux.Router {
	listingService := &services.ListingService{Dynamo: &services.DynamoService{Client: emptyStoreStub{}}}
	controller := NewListingController(listingService)

	r := mux.NewRouter()
	r.HandleFunc("/api/listings", controller.HandleCreateListing).Methods("POST")
	r.HandleFunc("/api/listings/{listingId}", controller.HandleGetListing).Methods("GET")
	return r
}

func TestHandleCreateListingRejectsBadBody(t *testing.T) {
	r := newListingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateListingRequiresFields(t *testing.T) {
	r := newListingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(`{"authorUid":"U1"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateListingSuccess(t *testing.T) {
	r := newListingRouter()

	body := `{"authorUid":"U1","description":"Court A","listingDate":"2024-06-01T10:00","city":"Helsinki"}`
	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Court A")
}

func TestHandleGetListingNotFound(t *testing.T) {
	r := newListingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/listings/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
