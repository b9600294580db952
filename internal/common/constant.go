// Package common contains shared constants and error types used across
// ImgKeeper components.
package common

// DefaultFolder is the folder that always exists. It cannot be renamed or
// deleted and receives records whose folder is missing or was removed.
const DefaultFolder = "Unclassified"

// DefaultThumbnailSize is the thumbnail edge length, in pixels, used until the
// user picks another one.
const DefaultThumbnailSize = 250

// Accepted thumbnail sizes, inclusive.
const (
	MinThumbnailSize = 50
	MaxThumbnailSize = 1000
)

// Keys of the persisted values.
const (
	KeyUploadHistory = "uploadHistory"
	KeyFolders       = "imgurFolders"
	KeyCurrentFolder = "currentFolder"
	KeyThumbnailSize = "thumbnailSize"
	KeyClientID      = "imgurClientId"
)
