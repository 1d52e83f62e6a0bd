package utils

import (
	"path/filepath"
	"strings"

	"github.com/danielbonkowsky/sharayunet/models"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".m4v":  true,
	".mkv":  true,
}

// DetectMediaType classifies an uploaded file as image or video. The
// declared content type wins when it says video; otherwise the filename
// extension decides; anything else is an image. The result is persisted
// with the media row so deletion never re-detects.
func DetectMediaType(contentType, filename string) string {
	if strings.HasPrefix(contentType, "video/") {
		return models.MediaTypeVideo
	}
	if videoExtensions[strings.ToLower(filepath.Ext(filename))] {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}
