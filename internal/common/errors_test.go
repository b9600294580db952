package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadError_MessageAndUnwrap(t *testing.T) {
	inner := errors.New("connection reset")

	e := &UploadError{Source: "cat.png", Err: inner}
	assert.Equal(t, "upload of cat.png failed: connection reset", e.Error())
	assert.ErrorIs(t, e, inner)

	e = &UploadError{Status: 400, Message: "Bad Request"}
	assert.Equal(t, "upload failed: Bad Request", e.Error())
}

func TestRemoteDeleteError_PrefersMessage(t *testing.T) {
	inner := errors.New("timeout")

	e := &RemoteDeleteError{Deletehash: "d1", Message: "Unauthorized", Err: inner}
	assert.Equal(t, "failed to delete: Unauthorized", e.Error())
	assert.ErrorIs(t, e, inner)

	e = &RemoteDeleteError{Deletehash: "d1", Err: inner}
	assert.Equal(t, "failed to delete: timeout", e.Error())
}

func TestTypedErrors_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("rename: %w", &DuplicateFolderError{Name: "Work"})

	var dup *DuplicateFolderError
	require.True(t, errors.As(wrapped, &dup))
	assert.Equal(t, "Work", dup.Name)

	inv := &InvalidOperationError{Op: "delete folder", Err: ErrFolderNotFound}
	assert.ErrorIs(t, inv, ErrFolderNotFound)
	assert.Equal(t, "delete folder: folder not found", inv.Error())

	inv = &InvalidOperationError{Op: "rename folder", Reason: "default folder is protected"}
	assert.Equal(t, "rename folder: default folder is protected", inv.Error())
}

func TestMissingCredentialError(t *testing.T) {
	e := &MissingCredentialError{Action: "upload"}
	assert.Equal(t, "client id is not set, cannot upload", e.Error())
}
