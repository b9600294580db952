// Package models defines the upload history data types.
package models

import (
	"path"
	"strings"
)

// Thumbnail size suffixes understood by the hosting service.
const (
	ThumbnailSmall = "s"
	ThumbnailLarge = "l"
)

// UploadRecord is one uploaded item. There is no primary key: two records
// with the same (Link, Deletehash, Folder) are indistinguishable.
type UploadRecord struct {
	// Link is the public URL of the uploaded image.
	Link string `json:"link"`

	// Deletehash is the opaque token used to delete the image remotely.
	Deletehash string `json:"deletehash"`

	// Folder names the folder the record belongs to. Records written before
	// folders existed carry no folder at all and decode with Folder == "".
	Folder string `json:"folder,omitempty"`
}

// Matches reports whether r has the given identity tuple.
func (r UploadRecord) Matches(link, deletehash, folder string) bool {
	return r.Link == link && r.Deletehash == deletehash && r.Folder == folder
}

// ThumbnailURL inserts the size suffix before the link's extension:
// "https://i.imgur.com/abc.png" becomes "https://i.imgur.com/abcl.png".
// Links without an extension are returned unchanged.
func (r UploadRecord) ThumbnailURL(size string) string {
	ext := path.Ext(r.Link)
	if ext == "" {
		return r.Link
	}
	return strings.TrimSuffix(r.Link, ext) + size + ext
}

// IsVideo reports whether the link points to a video rather than a still image.
func (r UploadRecord) IsVideo() bool {
	for _, ext := range []string{".mp4", ".webm", ".gifv"} {
		if strings.HasSuffix(r.Link, ext) {
			return true
		}
	}
	return false
}
