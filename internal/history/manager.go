package history

import (
	"context"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
	"github.com/dmitrijs2005/imgkeeper/internal/session"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
)

// Manager runs history operations as full read-modify-write cycles. It
// keeps no state between calls.
type Manager struct {
	store storage.Store
	log   logging.Logger
}

func NewManager(store storage.Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// LoadAll returns the whole history with legacy records migrated. The
// migrated list is saved only when something changed.
func (m *Manager) LoadAll(ctx context.Context) (models.HistoryList, error) {
	list, err := m.store.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}

	folders, err := m.store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}

	migrated, changed := Migrate(list, session.WithDefault(folders))
	if !changed {
		return list, nil
	}

	if err := m.store.SaveHistory(ctx, migrated); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "history migrated", "records", len(migrated))
	return migrated, nil
}

// List returns the records of folder, newest first.
func (m *Manager) List(ctx context.Context, folder string) (models.HistoryList, error) {
	list, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByFolder(list, folder), nil
}

// Append records a finished upload in the session's current folder. A
// current folder missing from the registry falls back to the default folder;
// the returned record carries the folder actually stored.
func (m *Manager) Append(ctx context.Context, sess *session.Session, link, deletehash string) (models.UploadRecord, error) {
	folders, err := m.store.LoadFolders(ctx)
	if err != nil {
		return models.UploadRecord{}, err
	}

	folder := sess.CurrentFolder
	if !session.WithDefault(folders).Contains(folder) {
		m.log.Warn(ctx, "current folder not registered, using default", "folder", folder)
		folder = common.DefaultFolder
	}
	rec := models.UploadRecord{Link: link, Deletehash: deletehash, Folder: folder}

	list, err := m.LoadAll(ctx)
	if err != nil {
		return models.UploadRecord{}, err
	}

	if err := m.store.SaveHistory(ctx, Prepend(list, rec)); err != nil {
		return models.UploadRecord{}, err
	}

	m.log.Debug(ctx, "record appended", "folder", rec.Folder, "link", rec.Link)
	return rec, nil
}

// Reorder moves a record inside folder. See ReorderWithinFolder.
func (m *Manager) Reorder(ctx context.Context, folder string, from, to int) error {
	list, err := m.LoadAll(ctx)
	if err != nil {
		return err
	}

	out, used, err := ReorderWithinFolder(list, folder, from, to)
	if err != nil {
		return err
	}
	if used != to {
		m.log.Warn(ctx, "reorder target clamped", "folder", folder, "requested", to, "used", used)
	}

	return m.store.SaveHistory(ctx, out)
}

// Move puts rec into newFolder. newFolder must be registered. It reports
// false when rec is no longer in the history.
func (m *Manager) Move(ctx context.Context, rec models.UploadRecord, newFolder string) (bool, error) {
	folders, err := m.store.LoadFolders(ctx)
	if err != nil {
		return false, err
	}
	if !session.WithDefault(folders).Contains(newFolder) {
		return false, &common.InvalidOperationError{Op: "move", Err: common.ErrFolderNotFound}
	}

	list, err := m.LoadAll(ctx)
	if err != nil {
		return false, err
	}

	out, found := MoveToFolder(list, rec.Link, rec.Deletehash, rec.Folder, newFolder)
	if !found {
		return false, nil
	}

	if err := m.store.SaveHistory(ctx, out); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops the records left behind by a confirmed remote deletion.
func (m *Manager) Remove(ctx context.Context, deletehash, folder string) (int, error) {
	list, err := m.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	out, n := RemoveByRemoteID(list, deletehash, folder)
	if n == 0 {
		return 0, nil
	}
	return n, m.store.SaveHistory(ctx, out)
}

// Clear drops every record of folder.
func (m *Manager) Clear(ctx context.Context, folder string) (int, error) {
	list, err := m.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	out, n := ClearFolder(list, folder)
	if n == 0 {
		return 0, nil
	}
	if err := m.store.SaveHistory(ctx, out); err != nil {
		return 0, err
	}

	m.log.Info(ctx, "folder cleared", "folder", folder, "removed", n)
	return n, nil
}
