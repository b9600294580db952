package upload

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Source is either local bytes (Data) or a remote image address (URL).
type Source struct {
	Name string
	Data []byte
	URL  string
}

// FromFile reads the file at path.
func FromFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Source{Name: filepath.Base(path), Data: data}, nil
}

// FromURL accepts absolute http and https addresses only.
func FromURL(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Source{}, fmt.Errorf("invalid image url %q", raw)
	}
	return Source{Name: raw, URL: raw}, nil
}

func (s Source) IsURL() bool {
	return s.URL != ""
}

func (s Source) String() string {
	if s.IsURL() {
		return s.URL
	}
	return s.Name
}

// IsImage reports whether the source holds image content. URL sources are
// not fetched and always pass.
func IsImage(s Source) bool {
	if s.IsURL() {
		return true
	}
	return strings.HasPrefix(mimetype.Detect(s.Data).String(), "image/")
}

// ContentType is the detected MIME type of the source bytes.
func ContentType(s Source) string {
	return mimetype.Detect(s.Data).String()
}

// Extension returns the file extension for s, taken from its name or, when
// the name has none, from the detected content type.
func Extension(s Source) string {
	if ext := strings.ToLower(filepath.Ext(s.Name)); ext != "" {
		return ext
	}
	return mimetype.Detect(s.Data).Extension()
}
