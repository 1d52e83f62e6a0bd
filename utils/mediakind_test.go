package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielbonkowsky/sharayunet/models"
)

func TestDetectMediaType(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		filename    string
		want        string
	}{
		{"VideoContentTypeWins", "video/mp4", "clip.mp4", models.MediaTypeVideo},
		{"VideoContentTypeOverridesExtension", "video/quicktime", "clip.jpg", models.MediaTypeVideo},
		{"ExtensionFallback", "application/octet-stream", "clip.mp4", models.MediaTypeVideo},
		{"ExtensionCaseInsensitive", "", "CLIP.MOV", models.MediaTypeVideo},
		{"WebmExtension", "", "clip.webm", models.MediaTypeVideo},
		{"ImageContentType", "image/jpeg", "photo.jpg", models.MediaTypeImage},
		{"UnknownDefaultsToImage", "", "notes.txt", models.MediaTypeImage},
		{"NoExtension", "", "clip", models.MediaTypeImage},
		{"ImageTypeWithVideoWord", "image/png", "video.png", models.MediaTypeImage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectMediaType(tc.contentType, tc.filename))
		})
	}
}
