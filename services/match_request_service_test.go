package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMatchRequestTargetsListingAuthor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listing, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)

	request, err := env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	require.NoError(t, err)
	assert.Equal(t, "U1", request.TargetUID)
	assert.Equal(t, "U2", request.Requester)
	assert.Equal(t, listing.ListingID, request.ListingID)
	assert.NotEmpty(t, request.RequestID)
}

func TestCreateMatchRequestMissingListing(t *testing.T) {
	env := newTestEnv()

	_, err := env.requests.CreateMatchRequest(context.Background(), "U2", "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMatchRequestOwnListing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listing, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)

	_, err = env.requests.CreateMatchRequest(ctx, "U1", listing.ListingID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateMatchRequestDeduplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listing, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)

	_, err = env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	require.NoError(t, err)

	_, err = env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	assert.ErrorIs(t, err, ErrConflict)

	pending, skipped, err := env.requests.ListPendingForTarget(ctx, "U1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Zero(t, skipped)
}

func TestCreateMatchRequestAfterMatchExists(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listing, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)

	_, err = env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	require.NoError(t, err)
	_, err = env.scheduling.AcceptMatchRequest(ctx, "U1", listing.ListingID, "U2")
	require.NoError(t, err)

	// The listing is matched; late requests must not enter the system.
	_, err = env.requests.CreateMatchRequest(ctx, "U3", listing.ListingID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListPendingForTarget(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listingA, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)
	listingB, err := env.listings.CreateListing(ctx, "U2", "Court B", "2024-06-02T18:00", "Espoo")
	require.NoError(t, err)

	_, err = env.requests.CreateMatchRequest(ctx, "U2", listingA.ListingID)
	require.NoError(t, err)
	_, err = env.requests.CreateMatchRequest(ctx, "U3", listingA.ListingID)
	require.NoError(t, err)
	_, err = env.requests.CreateMatchRequest(ctx, "U1", listingB.ListingID)
	require.NoError(t, err)

	pending, skipped, err := env.requests.ListPendingForTarget(ctx, "U1")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Zero(t, skipped)
	for _, request := range pending {
		assert.Equal(t, "U1", request.TargetUID)
	}
}

func TestRejectMatchRequest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	listing, err := env.listings.CreateListing(ctx, "U1", "Court A", "2024-06-01T10:00", "Helsinki")
	require.NoError(t, err)
	_, err = env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	require.NoError(t, err)

	// Only the target may reject.
	err = env.requests.RejectMatchRequest(ctx, "U3", listing.ListingID, "U2")
	assert.ErrorIs(t, err, ErrForbidden)

	err = env.requests.RejectMatchRequest(ctx, "U1", listing.ListingID, "U2")
	require.NoError(t, err)

	pending, _, err := env.requests.ListPendingForTarget(ctx, "U1")
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Rejection is terminal for that request but not for the pair's future:
	// the requester may ask again.
	_, err = env.requests.CreateMatchRequest(ctx, "U2", listing.ListingID)
	assert.NoError(t, err)
}
