package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email     string `gorm:"uniqueIndex;not null"`
    Password  string `gorm:"not null"`
    FullName  string `gorm:"not null"`
    Gender    string // male, female, other
    AvatarRef string // absolute URL or object key in the avatar bucket
}
