package service

import (
	"context"
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileService struct {
	Profiles ProfileStore
	Users    UserStore
}

func NewProfileService(profiles ProfileStore, users UserStore) *ProfileService {
	return &ProfileService{
		Profiles: profiles,
		Users:    users,
	}
}

type ProfileInput struct {
	Name           string
	MobileNumber   string
	DOB            string
	Bio            string
	ProfilePicture string
}

// ProfileUpdate carries only the fields the client sent; nil pointers are
// left untouched in the stored document.
type ProfileUpdate struct {
	Name           *string
	MobileNumber   *string
	DOB            *string
	Bio            *string
	ProfilePicture *string
}

func (s *ProfileService) Create(ctx context.Context, userID, email string, in ProfileInput) (*model.Profile, error) {
	_, err := s.Profiles.FindByUserID(ctx, userID)
	if err == nil {
		return nil, util.ErrProfileExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	profile := &model.Profile{
		UserID:           userID,
		Email:            email,
		Name:             in.Name,
		MobileNumber:     in.MobileNumber,
		DOB:              in.DOB,
		Bio:              in.Bio,
		ProfilePicture:   in.ProfilePicture,
		ProfileCompleted: true,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := s.Profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	// Flip the denormalized flag on the user document.
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		if err := s.Users.SetProfileCompleted(ctx, oid, true); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*model.Profile, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.MobileNumber != nil {
		fields["mobile_number"] = *in.MobileNumber
	}
	if in.DOB != nil {
		fields["dob"] = *in.DOB
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.ProfilePicture != nil {
		fields["profile_picture"] = *in.ProfilePicture
	}

	if err := s.Profiles.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// SetPicture records the uploaded picture URL on the profile.
func (s *ProfileService) SetPicture(ctx context.Context, userID, url string) (*model.Profile, error) {
	return s.Update(ctx, userID, ProfileUpdate{ProfilePicture: &url})
}
