package models

import "strings"

// Message is one entry in a conversation's append-only log. The log is
// canonical: both participants read the same items under the same
// conversationId, so there is no mirrored copy to drift out of sync.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // ✅ Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`           // ✅ Sort Key
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	FromID         string `dynamodbav:"fromId" json:"fromId"`
	ToID           string `dynamodbav:"toId" json:"toId"`
	Text           string `dynamodbav:"text" json:"text"`
}

// ConversationID derives the shared log key for a pair of users. The pair
// is unordered: both sides of the conversation map to the same key.
func ConversationID(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "#" + b
}
