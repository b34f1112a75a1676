package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile stores a new musician profile. The id and creation
// timestamp are assigned here when the caller leaves them empty.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.Username == "" || profile.EmailID == "" {
		return nil, errors.New("username and emailId are required")
	}
	if profile.UserID == "" {
		profile.UserID = uuid.New().String()
	}
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}

	log.Printf("Stored profile %s (%s)", profile.UserID, profile.Username)
	return &profile, nil
}

// GetUserProfile retrieves a profile by id
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfileByEmail retrieves a profile through the email GSI
func (ups *UserProfileService) GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	keyCondition := "emailId = :emailId"
	expressionValues := map[string]types.AttributeValue{
		":emailId": &types.AttributeValueMemberS{Value: emailID},
	}

	items, err := ups.Dynamo.QueryItemsWithIndex(ctx, models.UserProfilesTable, models.UserProfilesEmailIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by email: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrProfileNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile overwrites the mutable profile fields for userID.
// Only the owning user's write path calls this.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updated models.UserProfile) (*models.UserProfile, error) {
	existing, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Identity and creation time are immutable
	updated.UserID = existing.UserID
	updated.EmailID = existing.EmailID
	updated.CreatedAt = existing.CreatedAt
	if updated.Username == "" {
		updated.Username = existing.Username
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetProfileWithDistance fetches a profile and, when both sides carry
// coordinates, annotates it with the whole-km distance to the viewer.
func (ups *UserProfileService) GetProfileWithDistance(ctx context.Context, userID, viewerID string) (*models.UserProfile, error) {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if viewerID == "" || viewerID == userID {
		return profile, nil
	}

	viewer, err := ups.GetUserProfile(ctx, viewerID)
	if err != nil {
		// Distance is a display nicety; the profile itself is the answer.
		log.Printf("Viewer profile %s unavailable, skipping distance: %v", viewerID, err)
		return profile, nil
	}

	if !profile.HasCoordinates() || !viewer.HasCoordinates() {
		return profile, nil
	}

	profile.DistanceKm = utils.DistanceKm(viewer.Latitude, viewer.Longitude, profile.Latitude, profile.Longitude)
	return profile, nil
}

// ProfilesForSearch returns every profile except the requester's own.
// Store failures surface as ErrDataSourceUnavailable so SearchService can
// fall back to the local dataset.
func (ups *UserProfileService) ProfilesForSearch(ctx context.Context, excludeUserID string) ([]models.UserProfile, error) {
	excludeFields := map[string]string{}
	if excludeUserID != "" {
		excludeFields["userId"] = excludeUserID
	}

	var profiles []models.UserProfile
	if err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, excludeFields, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
