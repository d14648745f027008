package helpers

import (
	"os"
)

// RemoveFileIfExists deletes the file at path, treating "already gone" as
// success. The DB row is the source of truth for existence, so callers
// log but do not escalate other removal errors.
func RemoveFileIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// ExtensionForMime maps the supported upload MIME types to file
// extensions. Unsupported types return "".
func ExtensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	return ""
}
