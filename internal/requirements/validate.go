package requirements

import (
	"path"
	"strings"
)

// MaxFileBytes is the upload size ceiling.
const MaxFileBytes = 10 << 20 // 10 MiB

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".xls":  {},
	".xlsx": {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// ValidateFile gates a selected file before any upload is attempted.
// Size is checked before the extension, so an oversized file is rejected
// as too large regardless of its type.
func ValidateFile(fileName string, size int64) error {
	if size > MaxFileBytes {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(path.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

// AllowedExtensions lists the accepted file extensions for display.
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".png", ".jpg", ".jpeg"}
}
