package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"matchpoint_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableKeys mirrors the key schemas of the real tables.
var tableKeys = map[string][]string{
	models.PlayListingsTable:     {"listingId"},
	models.MatchRequestsTable:    {"listingId", "requester"},
	models.ScheduledMatchesTable: {"listingId"},
	models.MessagesTable:         {"conversationId", "createdAt"},
	models.RecentMessagesTable:   {"ownerId", "counterpartId"},
	models.UserProfilesTable:     {"uid"},
}

// fakeDynamoDB is an in-memory DynamoDBAPI good enough for the expressions
// the services actually use: equality key conditions, attribute_not_exists
// put conditions, single-assignment SET updates, and write transactions.
type fakeDynamoDB struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	// failPuts makes PutItem calls against the named tables fail, for
	// exercising partial-failure paths.
	failPuts map[string]bool
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{
		tables:   make(map[string]map[string]map[string]types.AttributeValue),
		failPuts: make(map[string]bool),
	}
}

func (f *fakeDynamoDB) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = make(map[string]map[string]types.AttributeValue)
	}
	return f.tables[name]
}

func itemKey(tableName string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range tableKeys[tableName] {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
			parts = append(parts, v.Value)
		}
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.table(*params.TableName)[itemKey(*params.TableName, params.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPuts[*params.TableName] {
		return nil, fmt.Errorf("injected put failure for table %s", *params.TableName)
	}
	key := itemKey(*params.TableName, params.Item)
	if params.ConditionExpression != nil && strings.HasPrefix(*params.ConditionExpression, "attribute_not_exists") {
		if _, exists := f.table(*params.TableName)[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	f.table(*params.TableName)[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := itemKey(*params.TableName, params.Key)
	item := f.table(*params.TableName)[key]
	if item == nil {
		item = make(map[string]types.AttributeValue)
		for k, v := range params.Key {
			item[k] = v
		}
	}
	// Supports the single-assignment form "SET field = :val".
	expr := strings.TrimPrefix(*params.UpdateExpression, "SET ")
	parts := strings.SplitN(expr, " = ", 2)
	if len(parts) == 2 {
		item[strings.TrimSpace(parts[0])] = params.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	f.table(*params.TableName)[key] = item
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamoDB) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.table(*params.TableName), itemKey(*params.TableName, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Equality key conditions only: "attr = :placeholder".
	parts := strings.SplitN(*params.KeyConditionExpression, " = ", 2)
	attr := strings.TrimSpace(parts[0])
	want, ok := params.ExpressionAttributeValues[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS)
	if !ok {
		return nil, fmt.Errorf("unsupported key condition %q", *params.KeyConditionExpression)
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.table(*params.TableName) {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok && v.Value == want.Value {
			items = append(items, item)
		}
	}

	// Order by sort key when the table has one.
	if keys := tableKeys[*params.TableName]; len(keys) == 2 {
		sortAttr := keys[1]
		forward := params.ScanIndexForward == nil || *params.ScanIndexForward
		sort.SliceStable(items, func(i, j int) bool {
			a, _ := items[i][sortAttr].(*types.AttributeValueMemberS)
			b, _ := items[j][sortAttr].(*types.AttributeValueMemberS)
			if forward {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		})
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamoDB) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []map[string]types.AttributeValue
	for _, item := range f.table(*params.TableName) {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamoDB) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for tableName, requests := range params.RequestItems {
		for _, request := range requests {
			if request.DeleteRequest != nil {
				delete(f.table(tableName), itemKey(tableName, request.DeleteRequest.Key))
			}
			if request.PutRequest != nil {
				f.table(tableName)[itemKey(tableName, request.PutRequest.Item)] = request.PutRequest.Item
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func (f *fakeDynamoDB) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Validate every condition before applying anything.
	reasons := make([]types.CancellationReason, len(params.TransactItems))
	failed := false
	for i, item := range params.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		switch {
		case item.ConditionCheck != nil:
			key := itemKey(*item.ConditionCheck.TableName, item.ConditionCheck.Key)
			if strings.HasPrefix(*item.ConditionCheck.ConditionExpression, "attribute_not_exists") {
				if _, exists := f.table(*item.ConditionCheck.TableName)[key]; exists {
					reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
					failed = true
				}
			}
		case item.Put != nil && item.Put.ConditionExpression != nil:
			key := itemKey(*item.Put.TableName, item.Put.Item)
			if strings.HasPrefix(*item.Put.ConditionExpression, "attribute_not_exists") {
				if _, exists := f.table(*item.Put.TableName)[key]; exists {
					reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
					failed = true
				}
			}
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, item := range params.TransactItems {
		if item.Put != nil {
			f.table(*item.Put.TableName)[itemKey(*item.Put.TableName, item.Put.Item)] = item.Put.Item
		}
		if item.Delete != nil {
			delete(f.table(*item.Delete.TableName), itemKey(*item.Delete.TableName, item.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
