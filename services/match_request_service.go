package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"matchpoint_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchRequestService coordinates the request half of the protocol:
// creating, deduplicating, listing, and rejecting match requests.
// Accepting a request is the SchedulingService's job.
type MatchRequestService struct {
	Dynamo   *DynamoService
	Listings *ListingService
}

// CreateMatchRequest registers requesterUID's ask to play against the
// author of the given listing.
//
// Invariants enforced here:
//   - the listing must still exist,
//   - a user cannot request their own listing,
//   - at most one pending request per (requester, listing) pair,
//   - no new requests once the listing has a scheduled match.
//
// The last two are conditions inside a single transaction, not read-then-
// write checks, so concurrent callers cannot slip past them.
func (mrs *MatchRequestService) CreateMatchRequest(ctx context.Context, requesterUID, listingID string) (models.MatchRequest, error) {
	if requesterUID == "" || listingID == "" {
		return models.MatchRequest{}, fmt.Errorf("requester and listingId are required")
	}

	listing, err := mrs.Listings.GetListing(ctx, listingID)
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("listing %s: %w", listingID, err)
	}

	if listing.AuthorUID == requesterUID {
		return models.MatchRequest{}, fmt.Errorf("cannot request own listing: %w", ErrForbidden)
	}

	request := models.MatchRequest{
		ListingID: listingID,
		Requester: requesterUID,
		RequestID: uuid.NewString(),
		TargetUID: listing.AuthorUID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	item, err := attributevalue.MarshalMap(request)
	if err != nil {
		return models.MatchRequest{}, fmt.Errorf("failed to marshal match request: %w", err)
	}

	transactItems := []types.TransactWriteItem{
		{
			// The listing must not already be matched.
			ConditionCheck: &types.ConditionCheck{
				TableName: strPtr(models.ScheduledMatchesTable),
				Key: map[string]types.AttributeValue{
					"listingId": &types.AttributeValueMemberS{Value: listingID},
				},
				ConditionExpression: strPtr("attribute_not_exists(listingId)"),
			},
		},
		{
			// One pending request per (listing, requester).
			Put: &types.Put{
				TableName:           strPtr(models.MatchRequestsTable),
				Item:                item,
				ConditionExpression: strPtr("attribute_not_exists(listingId)"),
			},
		},
	}

	if err := mrs.Dynamo.TransactWriteItems(ctx, transactItems); err != nil {
		return models.MatchRequest{}, fmt.Errorf("failed to create match request: %w", err)
	}

	log.Printf("✅ Match request created: %s -> %s (listing %s)", requesterUID, listing.AuthorUID, listingID)
	return request, nil
}

// ListPendingForTarget returns the pending requests addressed to a user,
// i.e. asks against that user's listings. Malformed documents are skipped
// and counted.
func (mrs *MatchRequestService) ListPendingForTarget(ctx context.Context, targetUID string) ([]models.MatchRequest, int, error) {
	keyCondition := "targetUID = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetUID},
	}

	items, err := mrs.Dynamo.QueryItemsWithIndex(ctx, models.MatchRequestsTable, models.TargetUIDIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch match requests: %w", err)
	}

	requests := make([]models.MatchRequest, 0, len(items))
	skipped := 0
	for _, item := range items {
		var request models.MatchRequest
		if err := attributevalue.UnmarshalMap(item, &request); err != nil || request.ListingID == "" || request.Requester == "" {
			log.Printf("⚠️ Skipping malformed match request document: %v", err)
			skipped++
			continue
		}
		requests = append(requests, request)
	}

	return requests, skipped, nil
}

// ListForListing returns every pending request against one listing.
func (mrs *MatchRequestService) ListForListing(ctx context.Context, listingID string) ([]models.MatchRequest, error) {
	keyCondition := "listingId = :listingId"
	expressionValues := map[string]types.AttributeValue{
		":listingId": &types.AttributeValueMemberS{Value: listingID},
	}

	items, err := mrs.Dynamo.QueryItems(ctx, models.MatchRequestsTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests for listing %s: %w", listingID, err)
	}

	var requests []models.MatchRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requests for listing %s: %w", listingID, err)
	}
	return requests, nil
}

// GetMatchRequest fetches one request by its (listingId, requester) key.
func (mrs *MatchRequestService) GetMatchRequest(ctx context.Context, listingID, requesterUID string) (models.MatchRequest, error) {
	key := map[string]types.AttributeValue{
		"listingId": &types.AttributeValueMemberS{Value: listingID},
		"requester": &types.AttributeValueMemberS{Value: requesterUID},
	}

	item, err := mrs.Dynamo.GetItem(ctx, models.MatchRequestsTable, key)
	if err != nil {
		return models.MatchRequest{}, err
	}

	var request models.MatchRequest
	if err := attributevalue.UnmarshalMap(item, &request); err != nil {
		return models.MatchRequest{}, fmt.Errorf("failed to decode match request: %w", err)
	}
	return request, nil
}

// RejectMatchRequest drops a pending request. Only the target of the
// request may reject it. Rejection is terminal and has no side effects.
func (mrs *MatchRequestService) RejectMatchRequest(ctx context.Context, targetUID, listingID, requesterUID string) error {
	request, err := mrs.GetMatchRequest(ctx, listingID, requesterUID)
	if err != nil {
		return err
	}
	if request.TargetUID != targetUID {
		return fmt.Errorf("request is not addressed to %s: %w", targetUID, ErrForbidden)
	}

	key := map[string]types.AttributeValue{
		"listingId": &types.AttributeValueMemberS{Value: listingID},
		"requester": &types.AttributeValueMemberS{Value: requesterUID},
	}
	if err := mrs.Dynamo.DeleteItem(ctx, models.MatchRequestsTable, key); err != nil {
		return fmt.Errorf("failed to reject match request: %w", err)
	}

	log.Printf("✅ Match request rejected: %s on listing %s", requesterUID, listingID)
	return nil
}
