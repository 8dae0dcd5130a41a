package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdisornNangnoi/foodtracker-backend/models"
	"github.com/AdisornNangnoi/foodtracker-backend/storage"
	"github.com/AdisornNangnoi/foodtracker-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("food entry not found")

	// ErrValidation marks bad request payloads caught before any storage
	// call.
	ErrValidation = errors.New("validation failed")
)

type FoodService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewFoodService(db *gorm.DB, store storage.ObjectStore) *FoodService {
	return &FoodService{db: db, store: store}
}

type FoodInput struct {
	Name        string `json:"name" binding:"required"`
	Meal        string `json:"meal" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	LogDate     string `json:"log_date" binding:"required"`
	ImageBase64 string `json:"image_base64"`
	ImageName   string `json:"image_name"`
}

type FoodEntryView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Meal     string `json:"meal"`
	LogDate  string `json:"log_date"`
	ImageURL string `json:"image_url"`
}

type FoodListResult struct {
	Entries    []FoodEntryView `json:"entries"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// List pages through one user's diary: equality filter on the owner, an
// optional case-insensitive substring match on the name, newest log date
// first with creation time breaking ties.
func (s *FoodService) List(ctx context.Context, userID uint, search string, page, pageSize int) (*FoodListResult, error) {
	pageSize = NormalizePageSize(pageSize)
	if page < 1 {
		page = 1
	}

	entries, total, err := s.fetchPage(ctx, userID, search, page, pageSize)
	if err != nil {
		return nil, err
	}

	// The requested page can fall past the end after rows were deleted;
	// clamp to the last valid page and fetch again.
	totalPages := TotalPages(total, pageSize)
	if page > totalPages {
		page = ClampPage(page, totalPages)
		entries, total, err = s.fetchPage(ctx, userID, search, page, pageSize)
		if err != nil {
			return nil, err
		}
		totalPages = TotalPages(total, pageSize)
	}

	views := make([]FoodEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, s.view(e))
	}

	return &FoodListResult{
		Entries:    views,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *FoodService) listQuery(ctx context.Context, userID uint, search string) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.FoodEntry{}).Where("user_id = ?", userID)
	if text := strings.TrimSpace(search); text != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+text+"%")
	}
	return q
}

func (s *FoodService) fetchPage(ctx context.Context, userID uint, search string, page, pageSize int) ([]models.FoodEntry, int64, error) {
	var total int64
	if err := s.listQuery(ctx, userID, search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.FoodEntry
	err := s.listQuery(ctx, userID, search).
		Order("log_date DESC").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *FoodService) Create(ctx context.Context, userID uint, input FoodInput) (*FoodEntryView, error) {
	if err := validateLogDate(input.LogDate); err != nil {
		return nil, err
	}

	imageRef := ""
	if input.ImageBase64 != "" {
		key, err := s.uploadImage(ctx, input.ImageBase64, input.ImageName)
		if err != nil {
			return nil, err
		}
		imageRef = key
	}

	entry := models.FoodEntry{
		UserID:   userID,
		Name:     input.Name,
		Meal:     input.Meal,
		LogDate:  input.LogDate,
		ImageRef: imageRef,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		// The row never landed, so the object we just uploaded would be
		// orphaned. Best-effort cleanup.
		s.removeImage(imageRef)
		return nil, err
	}

	view := s.view(entry)
	return &view, nil
}

func (s *FoodService) Update(ctx context.Context, userID, entryID uint, input FoodInput) (*FoodEntryView, error) {
	var entry models.FoodEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return nil, ErrNotFound
	}

	if err := validateLogDate(input.LogDate); err != nil {
		return nil, err
	}

	oldRef := entry.ImageRef
	newRef := ""
	if input.ImageBase64 != "" {
		key, err := s.uploadImage(ctx, input.ImageBase64, input.ImageName)
		if err != nil {
			return nil, err
		}
		newRef = key
		entry.ImageRef = newRef
	}

	entry.Name = input.Name
	entry.Meal = input.Meal
	entry.LogDate = input.LogDate

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		s.removeImage(newRef)
		return nil, err
	}

	// The replaced image only goes away once the row points at the new one.
	if newRef != "" && oldRef != newRef {
		s.removeImage(oldRef)
	}

	view := s.view(entry)
	return &view, nil
}

func (s *FoodService) Delete(ctx context.Context, userID, entryID uint) error {
	var entry models.FoodEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return ErrNotFound
	}

	// Hard delete, no tombstone row.
	if err := s.db.WithContext(ctx).Unscoped().Delete(&entry).Error; err != nil {
		return err
	}

	s.removeImage(entry.ImageRef)
	return nil
}

func (s *FoodService) view(e models.FoodEntry) FoodEntryView {
	return FoodEntryView{
		ID:       e.ID,
		Name:     e.Name,
		Meal:     e.Meal,
		LogDate:  e.LogDate,
		ImageURL: storage.ResolveURL(s.store, storage.FoodBucket, e.ImageRef),
	}
}

func (s *FoodService) uploadImage(ctx context.Context, dataURL, name string) (string, error) {
	data, contentType, ext, err := utils.DecodeImage(dataURL)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = "food" + ext
	}
	key := utils.MakeObjectKey(name)
	if err := s.store.Upload(ctx, storage.FoodBucket, key, data, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return key, nil
}

func (s *FoodService) removeImage(ref string) {
	removeObject(s.store, storage.FoodBucket, ref)
}

func validateLogDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: log_date must be yyyy-mm-dd", ErrValidation)
	}
	return nil
}
