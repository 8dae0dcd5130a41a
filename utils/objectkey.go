package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var whitespace = regexp.MustCompile(`\s+`)

// MakeObjectKey builds a collision-resistant storage key for an uploaded
// file: millis timestamp, short random suffix, then the sanitized original
// name so the object stays recognizable in the bucket.
func MakeObjectKey(filename string) string {
	safe := whitespace.ReplaceAllString(strings.TrimSpace(filename), "_")
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), suffix, safe)
}
