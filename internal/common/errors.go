// Package common defines shared constants and errors used across layers of
// ImgKeeper. Sentinels are matched with errors.Is, typed errors with errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned when a batch contains no image sources.
	ErrNoImages = errors.New("no image files found")

	// ErrUnsupportedSource is returned by providers that cannot handle the
	// kind of source they were given.
	ErrUnsupportedSource = errors.New("unsupported upload source")

	// ErrFolderNotFound is the reason attached to operations on unknown folders.
	ErrFolderNotFound = errors.New("folder not found")
)

// MissingCredentialError means no API client id is configured, so the
// requested remote action cannot run.
type MissingCredentialError struct {
	Action string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("client id is not set, cannot %s", e.Action)
}

// UploadError is a network or remote API failure for a single upload.
type UploadError struct {
	Source  string
	Status  int
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Source == "" {
		return fmt.Sprintf("upload failed: %s", msg)
	}
	return fmt.Sprintf("upload of %s failed: %s", e.Source, msg)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// RemoteDeleteError means the hosting API refused or failed the deletion.
// The local record is kept.
type RemoteDeleteError struct {
	Deletehash string
	Message    string
	Err        error
}

func (e *RemoteDeleteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("failed to delete: %s", msg)
}

func (e *RemoteDeleteError) Unwrap() error {
	return e.Err
}

// DuplicateFolderError is returned when a folder name is already taken.
type DuplicateFolderError struct {
	Name string
}

func (e *DuplicateFolderError) Error() string {
	return fmt.Sprintf("folder %q already exists", e.Name)
}

// InvalidOperationError covers operations that are not allowed, such as
// renaming the default folder or moving an item from a non-existent index.
type InvalidOperationError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InvalidOperationError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return e.Err
}
