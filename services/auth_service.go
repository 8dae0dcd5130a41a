package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/AdisornNangnoi/foodtracker-backend/cache"
	"github.com/AdisornNangnoi/foodtracker-backend/models"
	"github.com/AdisornNangnoi/foodtracker-backend/storage"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"gorm.io/gorm"
)

// One generic error for both unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db       *gorm.DB
	store    storage.ObjectStore
	profiles cache.ProfileCache
}

func NewAuthService(db *gorm.DB, store storage.ObjectStore, profiles cache.ProfileCache) *AuthService {
	return &AuthService{db: db, store: store, profiles: profiles}
}

type RegisterInput struct {
	FullName    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=male female other"`
	ImageBase64 string `json:"image_base64"`
	ImageName   string `json:"image_name"`
}

type LoginResult struct {
	Token     string `json:"token"`
	UserID    uint   `json:"user_id"`
	FullName  string `json:"fullname"`
	AvatarURL string `json:"avatar_url"`
}

// Register uploads the avatar first and only then inserts the row; if the
// insert fails the fresh object is deleted so it cannot be orphaned.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	avatarRef := ""
	if input.ImageBase64 != "" {
		data, contentType, ext, err := utils.DecodeImage(input.ImageBase64)
		if err != nil {
			return err
		}
		name := input.ImageName
		if name == "" {
			name = "avatar" + ext
		}
		avatarRef = utils.MakeObjectKey(name)
		if err := s.store.Upload(ctx, storage.AvatarBucket, avatarRef, data, contentType); err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
	}

	user := models.User{
		FullName:  input.FullName,
		Email:     input.Email,
		Password:  hashed,
		Gender:    input.Gender,
		AvatarRef: avatarRef,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		removeObject(s.store, storage.AvatarBucket, avatarRef)
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	avatarURL := storage.ResolveURL(s.store, storage.AvatarBucket, user.AvatarRef)

	// Session lifecycle: display profile enters the cache at login and
	// leaves at logout.
	if err := s.profiles.Set(ctx, user.ID, &cache.Profile{FullName: user.FullName, AvatarURL: avatarURL}); err != nil {
		log.Printf("profile cache set failed for user %d: %v", user.ID, err)
	}

	return &LoginResult{
		Token:     token,
		UserID:    user.ID,
		FullName:  user.FullName,
		AvatarURL: avatarURL,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint) {
	if err := s.profiles.Delete(ctx, userID); err != nil {
		log.Printf("profile cache delete failed for user %d: %v", userID, err)
	}
}

// removeObject is the shared best-effort compensation step. External URLs
// are not our objects. Runs on a fresh context so an aborted request cannot
// cancel the cleanup.
func removeObject(store storage.ObjectStore, bucket, ref string) {
	if ref == "" || storage.IsAbsoluteURL(ref) {
		return
	}
	if err := store.Remove(context.Background(), bucket, []string{ref}); err != nil {
		log.Printf("failed to remove object %s from %s: %v", ref, bucket, err)
	}
}
