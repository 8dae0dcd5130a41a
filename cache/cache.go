package cache

import (
	"context"
	"os"
)

// Profile holds the denormalized display fields shown in the dashboard
// header, so a page view does not need a user row round trip.
type Profile struct {
	FullName  string `json:"fullname"`
	AvatarURL string `json:"avatar_url"`
}

// ProfileCache lifecycle: populated on login, refreshed on profile
// read/update, deleted on logout. Get returns (nil, nil) on a miss.
type ProfileCache interface {
	Get(ctx context.Context, userID uint) (*Profile, error)
	Set(ctx context.Context, userID uint, p *Profile) error
	Delete(ctx context.Context, userID uint) error
}

// NewProfileCache picks Redis when configured, otherwise an in-process map.
func NewProfileCache() ProfileCache {
	if os.Getenv("REDIS_HOST") == "" {
		return NewMemoryCache()
	}
	return NewRedisCache()
}
