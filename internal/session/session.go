// Package session holds the in-memory mirrors of persisted settings for one
// interactive session.
package session

import (
	"context"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
)

// Session is loaded once at start and refreshed by the operations that
// change the underlying values. It is passed explicitly; nothing in
// ImgKeeper keeps it in a global.
type Session struct {
	ClientID      string
	CurrentFolder string
	Folders       models.Folders
	ThumbnailSize int
}

// Load reads the session state from store. The folder list always starts
// with the default folder and CurrentFolder always names a registered
// folder; neither correction is written back.
func Load(ctx context.Context, store storage.Store) (*Session, error) {
	s := &Session{}
	if err := s.Refresh(ctx, store); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh reloads every mirrored value from store.
func (s *Session) Refresh(ctx context.Context, store storage.Store) error {
	id, err := store.LoadClientID(ctx)
	if err != nil {
		return err
	}

	folders, err := store.LoadFolders(ctx)
	if err != nil {
		return err
	}
	folders = WithDefault(folders)

	current, err := store.LoadCurrentFolder(ctx)
	if err != nil {
		return err
	}
	if !folders.Contains(current) {
		current = common.DefaultFolder
	}

	px, err := store.LoadThumbnailSize(ctx)
	if err != nil {
		return err
	}

	s.ClientID = id
	s.Folders = folders
	s.CurrentFolder = current
	s.ThumbnailSize = px
	return nil
}

// HasClientID reports whether an API client id is configured.
func (s *Session) HasClientID() bool {
	return s.ClientID != ""
}

// WithDefault returns folders with the default folder prepended when it is
// missing.
func WithDefault(folders models.Folders) models.Folders {
	if folders.Contains(common.DefaultFolder) {
		return folders
	}
	return append(models.Folders{common.DefaultFolder}, folders...)
}
