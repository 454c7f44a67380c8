package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"matchpoint_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MessageService maintains the per-conversation message logs and the
// recent-message summaries both participants see.
//
// The log is a single canonical append-only sequence keyed by the unordered
// participant pair; both sides read the same items, so there is no mirrored
// copy that can drift. The two recent-message summaries are still separate
// last-write-wins documents, one per owner.
type MessageService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
}

// SendMessage appends a message to the conversation log and refreshes both
// participants' recent-message summaries.
//
// If the log append fails, nothing was delivered and the error is fatal to
// the call. If the append succeeds but a summary write fails, the message
// is delivered and the call reports ErrPartialDelivery; the summaries are
// repaired by the next successful send.
func (ms *MessageService) SendMessage(ctx context.Context, fromID, toID, text string) (models.Message, error) {
	if fromID == "" || toID == "" || text == "" {
		return models.Message{}, fmt.Errorf("fromId, toId and text are required")
	}
	if fromID == toID {
		return models.Message{}, fmt.Errorf("cannot message yourself")
	}

	message := models.Message{
		ConversationID: models.ConversationID(fromID, toID),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		MessageID:      uuid.NewString(),
		FromID:         fromID,
		ToID:           toID,
		Text:           text,
	}

	if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return models.Message{}, fmt.Errorf("failed to store message: %w", err)
	}

	if err := ms.persistRecentMessages(ctx, message); err != nil {
		log.Printf("⚠️ Message %s delivered but summaries incomplete: %v", message.MessageID, err)
		return message, fmt.Errorf("%w: %v", ErrPartialDelivery, err)
	}

	return message, nil
}

// persistRecentMessages overwrites both parties' conversation summaries.
// Each summary carries the counterpart's profile details so the recent list
// renders without another lookup, matching what the clients expect.
func (ms *MessageService) persistRecentMessages(ctx context.Context, message models.Message) error {
	timestamp := message.CreatedAt

	senderSummary := models.RecentMessage{
		OwnerID:       message.FromID,
		CounterpartID: message.ToID,
		Timestamp:     timestamp,
		Text:          message.Text,
		FromID:        message.FromID,
		ToID:          message.ToID,
	}
	if counterpart, err := ms.Profiles.GetUserProfile(ctx, message.ToID); err == nil {
		senderSummary.ProfileImageURL = counterpart.ProfileImageURL
		senderSummary.Email = counterpart.Email
	}

	recipientSummary := models.RecentMessage{
		OwnerID:       message.ToID,
		CounterpartID: message.FromID,
		Timestamp:     timestamp,
		Text:          message.Text,
		FromID:        message.FromID,
		ToID:          message.ToID,
	}
	if sender, err := ms.Profiles.GetUserProfile(ctx, message.FromID); err == nil {
		recipientSummary.ProfileImageURL = sender.ProfileImageURL
		recipientSummary.Email = sender.Email
	}

	if err := ms.Dynamo.PutItem(ctx, models.RecentMessagesTable, senderSummary); err != nil {
		return fmt.Errorf("sender summary: %w", err)
	}
	if err := ms.Dynamo.PutItem(ctx, models.RecentMessagesTable, recipientSummary); err != nil {
		return fmt.Errorf("recipient summary: %w", err)
	}
	return nil
}

// GetMessages returns the conversation between two users in arrival order.
// Malformed documents are skipped and counted.
func (ms *MessageService) GetMessages(ctx context.Context, ownerID, counterpartID string, limit int) ([]models.Message, int, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: models.ConversationID(ownerID, counterpartID)},
	}

	items, err := ms.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), false)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages := make([]models.Message, 0, len(items))
	skipped := 0
	for _, item := range items {
		var message models.Message
		if err := attributevalue.UnmarshalMap(item, &message); err != nil || message.MessageID == "" {
			log.Printf("⚠️ Skipping malformed message document: %v", err)
			skipped++
			continue
		}
		messages = append(messages, message)
	}

	return messages, skipped, nil
}

// GetRecentMessages returns one summary per counterpart for the given user,
// newest first.
func (ms *MessageService) GetRecentMessages(ctx context.Context, ownerID string) ([]models.RecentMessage, error) {
	keyCondition := "ownerId = :ownerId"
	expressionValues := map[string]types.AttributeValue{
		":ownerId": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.RecentMessagesTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent messages: %w", err)
	}

	var summaries []models.RecentMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode recent messages: %w", err)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Timestamp > summaries[j].Timestamp
	})
	return summaries, nil
}
