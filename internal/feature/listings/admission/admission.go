// Package admission decides whether an uploaded file is accepted as a
// listing image.
package admission

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the upload size ceiling. The handler enforces it with an
// http.MaxBytesReader around the request body; it is part of the same
// admission contract as the type checks below.
const MaxImageBytes = 1_000_000

// allowedTypes is the image allow-list. Both the filename extension and the
// declared content-type subtype must appear here.
var allowedTypes = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"gif":  {},
}

// DisallowedTypeError reports a rejected upload, carrying the declared
// content type that caused the rejection.
type DisallowedTypeError struct {
	ContentType string
}

func (e *DisallowedTypeError) Error() string {
	return fmt.Sprintf("file type not allowed: %s", e.ContentType)
}

// Validate accepts a file only if the filename extension (case-insensitive)
// AND the declared content type are both on the image allow-list.
//
// Only declared metadata is inspected. A renamed file of another format whose
// declared type happens to be allow-listed passes; the site has never sniffed
// file content and changing that would reject uploads it used to accept.
func Validate(filename, contentType string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedTypes[ext]; !ok {
		return &DisallowedTypeError{ContentType: contentType}
	}

	declared := strings.ToLower(contentType)
	subtype, ok := strings.CutPrefix(declared, "image/")
	if !ok {
		return &DisallowedTypeError{ContentType: contentType}
	}
	if _, ok := allowedTypes[subtype]; !ok {
		return &DisallowedTypeError{ContentType: contentType}
	}
	return nil
}
