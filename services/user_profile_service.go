package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"matchpoint_server/models"
	"matchpoint_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// CreateUserProfile stores a new profile keyed by the auth-issued uid.
func (ups *UserProfileService) CreateUserProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	if profile.UID == "" || profile.Email == "" {
		return models.UserProfile{}, fmt.Errorf("uid and email are required")
	}
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to create user profile: %w", err)
	}

	log.Printf("✅ User profile created: %s (%s)", profile.UID, profile.Email)
	return profile, nil
}

// GetUserProfile retrieves a user profile by uid.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, uid string) (models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"uid": &types.AttributeValueMemberS{Value: uid},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to decode user profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileImage points the profile at a freshly uploaded image.
func (ups *UserProfileService) UpdateProfileImage(ctx context.Context, uid, profileImageURL string) error {
	key := map[string]types.AttributeValue{
		"uid": &types.AttributeValueMemberS{Value: uid},
	}
	updateExpression := "SET profileImageUrl = :url"
	expressionValues := map[string]types.AttributeValue{
		":url": &types.AttributeValueMemberS{Value: profileImageURL},
	}

	if _, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key, expressionValues, nil); err != nil {
		return fmt.Errorf("failed to update profile image for %s: %w", uid, err)
	}
	return nil
}

// ListOtherUsers returns every profile except the caller's, for the browse
// screen.
func (ups *UserProfileService) ListOtherUsers(ctx context.Context, uid string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "uid") != uid
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profiles: %w", err)
	}
	return profiles, nil
}
