package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection("profiles")}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) (string, error) {
	res, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return "", err
	}
	profile.ID = res.InsertedID.(primitive.ObjectID)
	return profile.ID.Hex(), nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateFields applies a partial $set update; callers pass only the
// fields the client actually provided.
func (r *ProfileRepository) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": fields})
	return err
}
