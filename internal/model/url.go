package model

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
)

// InvalidURLError carries the raw string that failed URL validation
type InvalidURLError struct {
	Raw string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("%q is invalid url", e.Raw)
}

// URL is an absolute URL (scheme and host present). The only way to obtain
// a non-zero URL is ParseURL, so every non-zero value is well-formed.
type URL struct {
	raw string
}

// ParseURL validates raw and wraps it as a URL
func ParseURL(raw string) (URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return URL{}, apperrors.Wrap(&InvalidURLError{Raw: raw}, apperrors.CodeValidationFailed, "invalid url")
	}
	return URL{raw: raw}, nil
}

// MustParseURL is ParseURL for literals known to be valid. It panics otherwise.
func MustParseURL(raw string) URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the canonical string form used for comparison and storage
func (u URL) String() string {
	return u.raw
}

// IsZero reports whether u was never set
func (u URL) IsZero() bool {
	return u.raw == ""
}

func (u URL) Equal(other URL) bool {
	return u.raw == other.raw
}

func (u URL) Compare(other URL) int {
	return strings.Compare(u.raw, other.raw)
}

func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

// UnmarshalText routes decoding through ParseURL
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := ParseURL(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
