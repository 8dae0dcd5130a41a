package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/AdisornNangnoi/foodtracker-backend/cache"
	"github.com/AdisornNangnoi/foodtracker-backend/models"
	"github.com/AdisornNangnoi/foodtracker-backend/storage"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileService struct {
	db       *gorm.DB
	store    storage.ObjectStore
	profiles cache.ProfileCache
}

func NewProfileService(db *gorm.DB, store storage.ObjectStore, profiles cache.ProfileCache) *ProfileService {
	return &ProfileService{db: db, store: store, profiles: profiles}
}

type ProfileInput struct {
	FullName    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	NewPassword string `json:"new_password"`
	ImageBase64 string `json:"image_base64"`
	ImageName   string `json:"image_name"`
}

type ProfileView struct {
	ID        uint   `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	AvatarURL string `json:"avatar_url"`
}

// Display returns the header fields, cache first. On a miss or partial miss
// it reads the row, prefers each freshly fetched field over the cached one,
// and writes the merged result back.
func (s *ProfileService) Display(ctx context.Context, userID uint) (*cache.Profile, error) {
	cached, err := s.profiles.Get(ctx, userID)
	if err != nil {
		log.Printf("profile cache get failed for user %d: %v", userID, err)
		cached = nil
	}
	if cached != nil && cached.FullName != "" && cached.AvatarURL != "" {
		return cached, nil
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, ErrUserNotFound
	}

	merged := &cache.Profile{
		FullName:  user.FullName,
		AvatarURL: storage.ResolveURL(s.store, storage.AvatarBucket, user.AvatarRef),
	}
	if cached != nil {
		if merged.FullName == "" {
			merged.FullName = cached.FullName
		}
		if merged.AvatarURL == "" {
			merged.AvatarURL = cached.AvatarURL
		}
	}

	if err := s.profiles.Set(ctx, userID, merged); err != nil {
		log.Printf("profile cache set failed for user %d: %v", userID, err)
	}
	return merged, nil
}

// Get always reads the authoritative row; the edit form needs every field.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	view := s.view(user)
	return &view, nil
}

// Update uploads a replacement avatar before touching the row. A failed row
// write deletes the fresh object; a successful one deletes the previous
// avatar, in that order, so the user never ends up pointing at nothing.
func (s *ProfileService) Update(ctx context.Context, userID uint, input ProfileInput) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	oldRef := user.AvatarRef
	newRef := ""
	if input.ImageBase64 != "" {
		data, contentType, ext, err := utils.DecodeImage(input.ImageBase64)
		if err != nil {
			return nil, err
		}
		name := input.ImageName
		if name == "" {
			name = "avatar" + ext
		}
		newRef = utils.MakeObjectKey(name)
		if err := s.store.Upload(ctx, storage.AvatarBucket, newRef, data, contentType); err != nil {
			return nil, fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarRef = newRef
	}

	user.FullName = input.FullName
	user.Email = input.Email
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if pw := strings.TrimSpace(input.NewPassword); pw != "" {
		hashed, err := utils.HashPassword(pw)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		removeObject(s.store, storage.AvatarBucket, newRef)
		return nil, err
	}

	if newRef != "" && oldRef != newRef {
		removeObject(s.store, storage.AvatarBucket, oldRef)
	}

	view := s.view(user)
	if err := s.profiles.Set(ctx, userID, &cache.Profile{FullName: view.FullName, AvatarURL: view.AvatarURL}); err != nil {
		log.Printf("profile cache set failed for user %d: %v", userID, err)
	}
	return &view, nil
}

func (s *ProfileService) view(user models.User) ProfileView {
	return ProfileView{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Gender:    user.Gender,
		AvatarURL: storage.ResolveURL(s.store, storage.AvatarBucket, user.AvatarRef),
	}
}
