package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyPartitionsByMediaType(t *testing.T) {
	assert.Equal(t, "uploads/image/abc.jpg", objectKey("abc.jpg", "image"))
	assert.Equal(t, "uploads/video/abc.jpg", objectKey("abc.jpg", "video"))
}

func TestGeneratePublicID(t *testing.T) {
	id := generatePublicID("holiday photo.JPG")
	assert.True(t, strings.HasSuffix(id, ".JPG"))
	assert.NotContains(t, id, " ")

	// IDs are unique across calls for the same filename.
	assert.NotEqual(t, id, generatePublicID("holiday photo.JPG"))
}
