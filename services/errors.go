package services

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Sentinel errors returned by the services layer. Controllers map these to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound means a referenced listing, request, match, or profile
	// does not exist (or no longer exists).
	ErrNotFound = errors.New("not found")

	// ErrConflict means a conditional write lost: duplicate pending match
	// request, or a listing that already has a scheduled match.
	ErrConflict = errors.New("conflict")

	// ErrForbidden means the caller is not the party the operation is
	// addressed to.
	ErrForbidden = errors.New("forbidden")

	// ErrStoreUnavailable wraps transient DynamoDB failures. Callers may
	// retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrPartialDelivery means a message reached the conversation log but
	// at least one recent-message summary write failed. The message is
	// delivered; the summaries heal on the next send.
	ErrPartialDelivery = errors.New("partial delivery")
)

// isConditionalCheckFailed reports whether err is a lost conditional write,
// either directly or inside a cancelled transaction.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
