package utils

import (
	"net/http"
	"strings"
)

// IsImage sniffs the payload and reports whether it looks like an image.
// Non-image uploads are rejected before the analysis pipeline runs.
func IsImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}
