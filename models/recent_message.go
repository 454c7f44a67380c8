package models

// RecentMessage is the last-write-wins conversation summary one user sees
// for one counterpart. Overwritten on every send, no history.
type RecentMessage struct {
	OwnerID         string `dynamodbav:"ownerId" json:"ownerId"`             // ✅ Partition Key
	CounterpartID   string `dynamodbav:"counterpartId" json:"counterpartId"` // ✅ Sort Key
	Timestamp       string `dynamodbav:"timestamp" json:"timestamp"`
	Text            string `dynamodbav:"text" json:"text"`
	FromID          string `dynamodbav:"fromId" json:"fromId"`
	ToID            string `dynamodbav:"toId" json:"toId"`
	ProfileImageURL string `dynamodbav:"profileImageUrl" json:"profileImageUrl"`
	Email           string `dynamodbav:"email" json:"email"`
}
