package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"matchpoint_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ListingService owns the play-listing collection. Listings are write-once:
// there is no edit or delete surface.
type ListingService struct {
	Dynamo *DynamoService
}

// CreateListing stores a new play listing and returns its generated ID.
func (ls *ListingService) CreateListing(ctx context.Context, authorUID, description, listingDate, city string) (models.PlayListing, error) {
	if authorUID == "" || description == "" || listingDate == "" {
		return models.PlayListing{}, fmt.Errorf("authorUid, description and listingDate are required")
	}

	listing := models.PlayListing{
		ListingID:   uuid.NewString(),
		AuthorUID:   authorUID,
		Description: description,
		ListingDate: listingDate,
		City:        city,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := ls.Dynamo.PutItem(ctx, models.PlayListingsTable, listing); err != nil {
		return models.PlayListing{}, fmt.Errorf("failed to create listing: %w", err)
	}

	log.Printf("✅ Listing created: %s by %s (%s)", listing.ListingID, authorUID, city)
	return listing, nil
}

// GetListing retrieves a single listing by ID.
func (ls *ListingService) GetListing(ctx context.Context, listingID string) (models.PlayListing, error) {
	key := map[string]types.AttributeValue{
		"listingId": &types.AttributeValueMemberS{Value: listingID},
	}

	item, err := ls.Dynamo.GetItem(ctx, models.PlayListingsTable, key)
	if err != nil {
		return models.PlayListing{}, err
	}

	var listing models.PlayListing
	if err := attributevalue.UnmarshalMap(item, &listing); err != nil {
		return models.PlayListing{}, fmt.Errorf("failed to decode listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns the full listing feed. Malformed documents are
// skipped and counted so one bad record cannot block the rest.
func (ls *ListingService) ListListings(ctx context.Context) ([]models.PlayListing, int, error) {
	output, err := ls.Dynamo.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: strPtr(models.PlayListingsTable),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to scan table '%s': %v", ErrStoreUnavailable, models.PlayListingsTable, err)
	}

	listings := make([]models.PlayListing, 0, len(output.Items))
	skipped := 0
	for _, item := range output.Items {
		var listing models.PlayListing
		if err := attributevalue.UnmarshalMap(item, &listing); err != nil || listing.ListingID == "" {
			log.Printf("⚠️ Skipping malformed listing document: %v", err)
			skipped++
			continue
		}
		listings = append(listings, listing)
	}

	return listings, skipped, nil
}
