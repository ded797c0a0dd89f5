package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"
)

// MaxDocumentSize is the upload limit for profile documents (10MB).
const MaxDocumentSize = 10 << 20

var (
	allowedDocumentTypes      = []string{"application/pdf", "image/jpeg", "image/png", "image/jpg"}
	allowedDocumentExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"}
)

// FileInfo is the metadata of an uploaded document.
type FileInfo struct {
	Name        string
	ContentType string
	Size        int64
}

// String returns the file name so a FileInfo counts as a present value.
func (f FileInfo) String() string {
	return f.Name
}

// FileInfoFromHeader extracts metadata from a multipart file header.
func FileInfoFromHeader(fh *multipart.FileHeader) FileInfo {
	if fh == nil {
		return FileInfo{}
	}
	return FileInfo{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
}

// ValidateFile checks size, declared content type and extension, in that
// order, and returns the first failure or "".
func ValidateFile(f FileInfo) string {
	if f.Size > MaxDocumentSize {
		return fmt.Sprintf("File size must be less than %dMB", MaxDocumentSize>>20)
	}

	if !slices.Contains(allowedDocumentTypes, f.ContentType) {
		return "File type not supported. Allowed types: " + strings.Join(allowedDocumentExtensions, ", ")
	}

	if !slices.Contains(allowedDocumentExtensions, fileExtension(f.Name)) {
		return "File extension not supported. Allowed extensions: " + strings.Join(allowedDocumentExtensions, ", ")
	}

	return ""
}

// DocumentRule adapts ValidateFile for registration with a FormValidator.
// The field value must be a FileInfo; a FileInfo without a name counts as
// a missing file.
func DocumentRule() Rule {
	return Rule{
		Required: true,
		Custom: func(value any) string {
			f, ok := value.(FileInfo)
			if !ok {
				return "File type not supported. Allowed types: " + strings.Join(allowedDocumentExtensions, ", ")
			}
			return ValidateFile(f)
		},
	}
}

func fileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
