package services

import (
	"context"
	"testing"

	"github.com/AdisornNangnoi/foodtracker-backend/cache"
	"github.com/AdisornNangnoi/foodtracker-backend/models"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, svc *ProfileService, avatarRef string) models.User {
	t.Helper()
	hashed, err := utils.HashPassword("pw")
	require.NoError(t, err)
	user := models.User{FullName: "Aom", Email: "aom@x.com", Password: hashed, Gender: "female", AvatarRef: avatarRef}
	require.NoError(t, svc.db.Create(&user).Error)
	return user
}

func TestDisplayPrefersCache(t *testing.T) {
	db := setupTestDB(t)
	profiles := cache.NewMemoryCache()
	svc := NewProfileService(db, newFakeStore(), profiles)
	ctx := context.Background()

	user := createTestUser(t, svc, "")
	require.NoError(t, profiles.Set(ctx, user.ID, &cache.Profile{FullName: "Cached Name", AvatarURL: "https://cdn.test/a.png"}))

	// change the row; a full cache hit must not touch it
	require.NoError(t, db.Model(&user).Update("full_name", "Row Name").Error)

	display, err := svc.Display(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cached Name", display.FullName)
}

func TestDisplayMissFetchesAndRepopulates(t *testing.T) {
	db := setupTestDB(t)
	profiles := cache.NewMemoryCache()
	svc := NewProfileService(db, newFakeStore(), profiles)
	ctx := context.Background()

	user := createTestUser(t, svc, "12345_abc_avatar.png")

	display, err := svc.Display(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aom", display.FullName)
	assert.Equal(t, "https://cdn.test/foodtracker-avatars/12345_abc_avatar.png", display.AvatarURL)

	cached, err := profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, display.AvatarURL, cached.AvatarURL)
}

func TestDisplayMergesPartialCache(t *testing.T) {
	db := setupTestDB(t)
	profiles := cache.NewMemoryCache()
	svc := NewProfileService(db, newFakeStore(), profiles)
	ctx := context.Background()

	// row has a name but no avatar; cache has an avatar but no name
	user := createTestUser(t, svc, "")
	require.NoError(t, profiles.Set(ctx, user.ID, &cache.Profile{AvatarURL: "https://example.com/old.png"}))

	display, err := svc.Display(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aom", display.FullName, "fetched field wins")
	assert.Equal(t, "https://example.com/old.png", display.AvatarURL, "cached field fills the gap")
}

func TestGetReadsRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, newFakeStore(), cache.NewMemoryCache())

	user := createTestUser(t, svc, "")
	view, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aom@x.com", view.Email)
	assert.Equal(t, "female", view.Gender)
	assert.Equal(t, "", view.AvatarURL)

	_, err = svc.Get(context.Background(), user.ID+99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateReplacesAvatarAfterCommit(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	profiles := cache.NewMemoryCache()
	svc := NewProfileService(db, store, profiles)
	ctx := context.Background()

	user := createTestUser(t, svc, "old_key_avatar.png")

	view, err := svc.Update(ctx, user.ID, ProfileInput{
		FullName: "Aom P.", Email: "aom@x.com", Gender: "female",
		ImageBase64: pngDataURL(), ImageName: "new avatar.png",
	})
	require.NoError(t, err)

	uploads := store.uploaded("foodtracker-avatars")
	require.Len(t, uploads, 1)
	assert.Contains(t, uploads[0], "new_avatar.png")
	assert.Equal(t, []string{"old_key_avatar.png"}, store.removed("foodtracker-avatars"),
		"previous avatar deleted only after the row update succeeded")
	assert.Equal(t, "https://cdn.test/foodtracker-avatars/"+uploads[0], view.AvatarURL)

	cached, err := profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "Aom P.", cached.FullName)
}

func TestUpdateCompensatesFailedCommit(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := NewProfileService(db, store, cache.NewMemoryCache())
	ctx := context.Background()

	other := models.User{FullName: "Other", Email: "taken@x.com", Password: "h", Gender: "male"}
	require.NoError(t, db.Create(&other).Error)
	user := createTestUser(t, svc, "old_key_avatar.png")

	// unique email conflict makes the row update fail after the upload
	_, err := svc.Update(ctx, user.ID, ProfileInput{
		FullName: "Aom", Email: "taken@x.com", ImageBase64: pngDataURL(),
	})
	require.Error(t, err)

	uploads := store.uploaded("foodtracker-avatars")
	require.Len(t, uploads, 1)
	assert.Equal(t, uploads, store.removed("foodtracker-avatars"), "fresh object compensated away")

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "old_key_avatar.png", reloaded.AvatarRef, "old avatar untouched")
}

func TestUpdateExternalAvatarNotDeleted(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	svc := NewProfileService(db, store, cache.NewMemoryCache())

	user := createTestUser(t, svc, "https://example.com/me.png")

	_, err := svc.Update(context.Background(), user.ID, ProfileInput{
		FullName: "Aom", Email: "aom@x.com", ImageBase64: pngDataURL(),
	})
	require.NoError(t, err)
	assert.Empty(t, store.removed("foodtracker-avatars"), "external URL is not our object")
}

func TestUpdateChangesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db, newFakeStore(), cache.NewMemoryCache())

	user := createTestUser(t, svc, "")
	_, err := svc.Update(context.Background(), user.ID, ProfileInput{
		FullName: "Aom", Email: "aom@x.com", NewPassword: "brand-new",
	})
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("brand-new", reloaded.Password))
	assert.NotEqual(t, "brand-new", reloaded.Password)
}
