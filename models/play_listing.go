package models

// PlayListing is a posted availability slot for a match, owned by one user.
// Listings are immutable once created; there is no edit or delete flow.
type PlayListing struct {
	ListingID   string `dynamodbav:"listingId" json:"listingId"` // ✅ Partition Key
	AuthorUID   string `dynamodbav:"authorUid" json:"authorUid"`
	Description string `dynamodbav:"description" json:"description"`
	ListingDate string `dynamodbav:"listingDate" json:"listingDate"`
	City        string `dynamodbav:"city" json:"city"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}
