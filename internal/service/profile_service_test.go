package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture() (*ProfileService, *fakeProfileStore, *fakeUserStore) {
	profiles := newFakeProfileStore()
	users := newFakeUserStore()
	return NewProfileService(profiles, users), profiles, users
}

func TestCreateProfileMarksUserCompleted(t *testing.T) {
	svc, _, users := newProfileFixture()

	user := &model.User{Email: "alice@example.com"}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)

	profile, err := svc.Create(context.Background(), user.ID.Hex(), user.Email, ProfileInput{
		Name: "Alice",
		Bio:  "Learner",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.True(t, profile.ProfileCompleted)
	assert.True(t, users.users[user.ID.Hex()].ProfileCompleted, "the user document mirrors the flag")

	_, err = svc.Create(context.Background(), user.ID.Hex(), user.Email, ProfileInput{Name: "Again"})
	assert.ErrorIs(t, err, util.ErrProfileExists)
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.Get(context.Background(), "missing-user")
	assert.ErrorIs(t, err, util.ErrProfileNotFound)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, _, users := newProfileFixture()

	user := &model.User{Email: "alice@example.com"}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), user.ID.Hex(), user.Email, ProfileInput{
		Name: "Alice",
		Bio:  "Original bio",
	})
	require.NoError(t, err)

	newName := "Alice Cooper"
	updated, err := svc.Update(context.Background(), user.ID.Hex(), ProfileUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "Original bio", updated.Bio, "unsent fields keep their stored value")

	_, err = svc.Update(context.Background(), "missing-user", ProfileUpdate{Name: &newName})
	assert.ErrorIs(t, err, util.ErrProfileNotFound)
}

func TestSetPicture(t *testing.T) {
	svc, _, users := newProfileFixture()

	user := &model.User{Email: "alice@example.com"}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), user.ID.Hex(), user.Email, ProfileInput{Name: "Alice"})
	require.NoError(t, err)

	updated, err := svc.SetPicture(context.Background(), user.ID.Hex(), "/uploads/avatars/alice.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/alice.png", updated.ProfilePicture)
}
