package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{7, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 20, 2},
		{100, 50, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.pageSize), "total=%d pageSize=%d", c.total, c.pageSize)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(3, 3))
	assert.Equal(t, 3, ClampPage(4, 3))
	// total=7, pageSize=10, page=3 clamps to 1
	assert.Equal(t, 1, ClampPage(3, TotalPages(7, 10)))
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, 10, NormalizePageSize(10))
	assert.Equal(t, 20, NormalizePageSize(20))
	assert.Equal(t, 50, NormalizePageSize(50))
	assert.Equal(t, 10, NormalizePageSize(0))
	assert.Equal(t, 10, NormalizePageSize(15))
	assert.Equal(t, 10, NormalizePageSize(-1))
}
