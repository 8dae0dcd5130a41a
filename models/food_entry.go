package models

import "gorm.io/gorm"

// A single diary row. LogDate is the user-facing calendar date of the meal
// (yyyy-mm-dd), not the insert time; CreatedAt breaks ties when two entries
// share a date.
type FoodEntry struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    Name     string `gorm:"not null"`
    Meal     string `gorm:"not null"` // Breakfast, Lunch, Dinner, Snack
    LogDate  string `gorm:"not null;index"` // yyyy-mm-dd, lexicographic order is chronological
    ImageRef string // absolute URL or object key in the food bucket
}
