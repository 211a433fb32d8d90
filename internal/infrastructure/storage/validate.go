package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultFilename is used when an upload carries no file name.
const DefaultFilename = "photo.jpg"

// AllowedContentTypes lists the image types accepted for upload.
var AllowedContentTypes = []string{"image/jpeg", "image/png", "image/webp"}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

func isAllowedType(ct string) bool {
	for _, allowed := range AllowedContentTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

// ValidateUpload checks an upload before it is stored. The declared content
// type (parameters stripped) may be empty or one of AllowedContentTypes; the
// payload must be non-empty, within maxBytes when maxBytes > 0, and sniff as
// one of AllowedContentTypes. It returns the sniffed content type.
func ValidateUpload(declared string, data []byte, maxBytes int64) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	if ct != "" && !isAllowedType(ct) {
		return "", fmt.Errorf("%w: %s (allowed: %s)", ErrUnsupportedType, ct, strings.Join(AllowedContentTypes, ", "))
	}

	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrUploadTooLarge, len(data), maxBytes)
	}

	detected := mimetype.Detect(data)
	for _, allowed := range AllowedContentTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: content looks like %s", ErrUnsupportedType, detected.String())
}

// HasImageExtension reports whether name ends in a recognised image
// extension, case-insensitively.
func HasImageExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// NormalizeFilename defaults a missing name to photo.jpg and appends .jpg
// when the name has no image extension.
func NormalizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultFilename
	}
	if !HasImageExtension(name) {
		return name + ".jpg"
	}
	return name
}
