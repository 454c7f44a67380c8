package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"matchpoint_server/models"
	"matchpoint_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// SchedulingService turns an accepted match request into a durable
// scheduled match. The acceptance path is the only place in the system
// that needs real mutual exclusion: two users racing to accept requests
// against the same listing must produce exactly one match.
type SchedulingService struct {
	Dynamo   *DynamoService
	Listings *ListingService
	Requests *MatchRequestService
}

// AcceptMatchRequest materializes a ScheduledMatch from a pending request
// and retires every request against the same listing, as one transaction.
//
// The put of the match is conditioned on no match existing for the listing
// yet, so concurrent accepts cannot both win: the loser gets ErrConflict
// and its request set is cleaned up best-effort.
func (ss *SchedulingService) AcceptMatchRequest(ctx context.Context, accepterUID, listingID, requesterUID string) (models.ScheduledMatch, error) {
	request, err := ss.Requests.GetMatchRequest(ctx, listingID, requesterUID)
	if err != nil {
		return models.ScheduledMatch{}, fmt.Errorf("match request: %w", err)
	}
	if request.TargetUID != accepterUID {
		return models.ScheduledMatch{}, fmt.Errorf("request is not addressed to %s: %w", accepterUID, ErrForbidden)
	}

	listing, err := ss.Listings.GetListing(ctx, listingID)
	if err != nil {
		return models.ScheduledMatch{}, fmt.Errorf("listing %s: %w", listingID, err)
	}

	match := models.ScheduledMatch{
		ListingID:       listingID,
		MatchID:         uuid.NewString(),
		Player1UID:      request.Requester,
		Player2UID:      accepterUID,
		Date:            listing.ListingDate,
		Location:        listing.Description,
		AdditionalNotes: models.DefaultMatchNotes,
		Duration:        models.DefaultMatchDuration,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	matchItem, err := attributevalue.MarshalMap(match)
	if err != nil {
		return models.ScheduledMatch{}, fmt.Errorf("failed to marshal scheduled match: %w", err)
	}

	// Every pending request against the listing is retired in the same
	// transaction, including the accepted one. Competing requests resolve
	// dropped, never left dangling.
	competitors, err := ss.Requests.ListForListing(ctx, listingID)
	if err != nil {
		return models.ScheduledMatch{}, err
	}

	transactItems := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           strPtr(models.ScheduledMatchesTable),
				Item:                matchItem,
				ConditionExpression: strPtr("attribute_not_exists(listingId)"),
			},
		},
	}
	for _, competitor := range competitors {
		transactItems = append(transactItems, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: strPtr(models.MatchRequestsTable),
				Key: map[string]types.AttributeValue{
					"listingId": &types.AttributeValueMemberS{Value: competitor.ListingID},
					"requester": &types.AttributeValueMemberS{Value: competitor.Requester},
				},
			},
		})
	}

	if err := ss.Dynamo.TransactWriteItems(ctx, transactItems); err != nil {
		if errors.Is(err, ErrConflict) {
			// Another accept already won. The losing requests must not
			// dangle; retire them outside the failed transaction.
			ss.retireRequests(ctx, listingID, competitors)
			return models.ScheduledMatch{}, fmt.Errorf("listing %s already matched: %w", listingID, ErrConflict)
		}
		return models.ScheduledMatch{}, fmt.Errorf("failed to schedule match: %w", err)
	}

	log.Printf("🎾 Match scheduled: %s vs %s at %q on %s", match.Player1UID, match.Player2UID, match.Location, match.Date)
	return match, nil
}

// retireRequests deletes leftover requests for an already-matched listing.
// Best effort: failures are logged and left for the next accept or an
// operator sweep, never surfaced to the caller.
func (ss *SchedulingService) retireRequests(ctx context.Context, listingID string, requests []models.MatchRequest) {
	if len(requests) == 0 {
		return
	}

	writeRequests := make([]types.WriteRequest, 0, len(requests))
	for _, request := range requests {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"listingId": &types.AttributeValueMemberS{Value: request.ListingID},
					"requester": &types.AttributeValueMemberS{Value: request.Requester},
				},
			},
		})
	}

	if err := ss.Dynamo.BatchWriteItems(ctx, models.MatchRequestsTable, writeRequests); err != nil {
		log.Printf("⚠️ Failed to retire %d stale requests for listing %s: %v", len(requests), listingID, err)
	}
}

// GetScheduledMatch returns the match materialized for a listing, if any.
func (ss *SchedulingService) GetScheduledMatch(ctx context.Context, listingID string) (models.ScheduledMatch, error) {
	key := map[string]types.AttributeValue{
		"listingId": &types.AttributeValueMemberS{Value: listingID},
	}

	item, err := ss.Dynamo.GetItem(ctx, models.ScheduledMatchesTable, key)
	if err != nil {
		return models.ScheduledMatch{}, err
	}

	var match models.ScheduledMatch
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return models.ScheduledMatch{}, fmt.Errorf("failed to decode scheduled match: %w", err)
	}
	return match, nil
}

// ListScheduledMatchesForUser returns every match the user plays in,
// on either side.
func (ss *SchedulingService) ListScheduledMatchesForUser(ctx context.Context, uid string) ([]models.ScheduledMatch, error) {
	var matches []models.ScheduledMatch
	err := ss.Dynamo.ScanWithFilter(ctx, models.ScheduledMatchesTable, func(item map[string]types.AttributeValue) bool {
		player1 := utils.ExtractString(item, "player1_uid")
		player2 := utils.ExtractString(item, "player2_uid")
		return player1 == uid || player2 == uid
	}, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled matches: %w", err)
	}
	return matches, nil
}
