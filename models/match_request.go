package models

// MatchRequest is one user's ask to play against a listing's author.
// The key schema (listingId, requester) makes a duplicate pending request
// for the same pair impossible to insert twice.
type MatchRequest struct {
	ListingID string `dynamodbav:"listingId" json:"listingId"` // ✅ Partition Key
	Requester string `dynamodbav:"requester" json:"requester"` // ✅ Sort Key
	RequestID string `dynamodbav:"requestId" json:"requestId"`
	TargetUID string `dynamodbav:"targetUID" json:"targetUID"` // ✅ Used in GSI
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}
