package form

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

var (
	// ErrFileTooLarge is an upload over the size cap.
	ErrFileTooLarge = errors.New("file is too large")
	// ErrUnsupportedType is an upload that is not an image.
	ErrUnsupportedType = errors.New("only image files are allowed")
)

const (
	// MaxDocumentSize caps KYC document uploads.
	MaxDocumentSize = 5 << 20
	// MaxLogoSize caps branding uploads.
	MaxLogoSize = 1 << 20
)

// CheckImage accepts image/* files up to maxBytes. An empty declared content
// type is sniffed from the data.
func CheckImage(f upstream.File, maxBytes int64) error {
	if len(f.Data) == 0 {
		return Invalid("file", "is required")
	}
	if int64(len(f.Data)) > maxBytes {
		return fmt.Errorf("%w: %s exceeds %dMB", ErrFileTooLarge, f.Name, maxBytes>>20)
	}
	ct := f.ContentType
	if ct == "" {
		ct = http.DetectContentType(f.Data)
	}
	if !strings.HasPrefix(strings.ToLower(ct), "image/") {
		return ErrUnsupportedType
	}
	return nil
}
