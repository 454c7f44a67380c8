package models

// ScheduledMatch is the confirmed outcome of an accepted MatchRequest.
// Keyed by listingId: a listing can only ever yield one match, and the
// conditional put in the scheduling service relies on that key schema.
type ScheduledMatch struct {
	ListingID       string `dynamodbav:"listingId" json:"listingId"` // ✅ Partition Key
	MatchID         string `dynamodbav:"matchId" json:"matchId"`
	Player1UID      string `dynamodbav:"player1_uid" json:"player1_uid"`
	Player2UID      string `dynamodbav:"player2_uid" json:"player2_uid"`
	Date            string `dynamodbav:"date" json:"date"`
	Location        string `dynamodbav:"location" json:"location"`
	AdditionalNotes string `dynamodbav:"additionalNotes" json:"additionalNotes"`
	Duration        string `dynamodbav:"duration" json:"duration"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}
