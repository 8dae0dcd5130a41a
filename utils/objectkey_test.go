package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeObjectKeySanitizesWhitespace(t *testing.T) {
	key := MakeObjectKey("som tam  photo.png")
	assert.True(t, strings.HasSuffix(key, "_som_tam_photo.png"), "got %q", key)
	assert.NotContains(t, key, " ")
}

func TestMakeObjectKeyUnique(t *testing.T) {
	a := MakeObjectKey("a.png")
	b := MakeObjectKey("a.png")
	assert.NotEqual(t, a, b)
}

func TestMakeObjectKeyKeepsOriginalName(t *testing.T) {
	key := MakeObjectKey("breakfast.jpg")
	assert.Contains(t, key, "breakfast.jpg")
}
