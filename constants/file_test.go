package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedExt(t *testing.T) {
	assert.True(t, IsAllowedExt(".jpg"))
	assert.True(t, IsAllowedExt(".JPEG"))
	assert.True(t, IsAllowedExt("png"))
	assert.False(t, IsAllowedExt(".pdf"))
	assert.False(t, IsAllowedExt(".gif"))
	assert.False(t, IsAllowedExt(""))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpg", NormalizeExt(".JPG"))
	assert.Equal(t, "png", NormalizeExt("png"))
}
