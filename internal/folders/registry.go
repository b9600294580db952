// Package folders manages the folder registry and the selected folder.
//
// Rename and delete cascade into the upload history. Both run in a single
// storage transaction, so either the registry, the records and the current
// folder pointer all change or none of them do.
package folders

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/history"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
	"github.com/dmitrijs2005/imgkeeper/internal/session"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
)

type Registry struct {
	store storage.Store
	log   logging.Logger
}

func NewRegistry(store storage.Store, log logging.Logger) *Registry {
	return &Registry{store: store, log: log}
}

// List returns the default folder followed by user folders in creation order.
func (r *Registry) List(ctx context.Context) (models.Folders, error) {
	return list(ctx, r.store)
}

func list(ctx context.Context, store storage.Store) (models.Folders, error) {
	f, err := store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}
	return session.WithDefault(f), nil
}

// Create registers a new folder and returns its trimmed name.
func (r *Registry) Create(ctx context.Context, sess *session.Session, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &common.InvalidOperationError{Op: "create folder", Reason: "folder name is empty"}
	}

	folders, err := r.List(ctx)
	if err != nil {
		return "", err
	}
	if folders.Contains(name) {
		return "", &common.DuplicateFolderError{Name: name}
	}

	folders = append(folders, name)
	if err := r.store.SaveFolders(ctx, folders); err != nil {
		return "", err
	}

	sess.Folders = folders
	r.log.Info(ctx, "folder created", "folder", name)
	return name, nil
}

// Rename renames a user folder and relabels its records.
func (r *Registry) Rename(ctx context.Context, sess *session.Session, oldName, newName string) error {
	const op = "rename folder"

	newName = strings.TrimSpace(newName)
	if oldName == common.DefaultFolder {
		return &common.InvalidOperationError{Op: op, Reason: "the default folder cannot be renamed"}
	}
	if newName == "" {
		return &common.InvalidOperationError{Op: op, Reason: "folder name is empty"}
	}

	var folders models.Folders
	err := r.store.Atomic(ctx, func(ctx context.Context, tx storage.Store) error {
		var err error
		folders, err = list(ctx, tx)
		if err != nil {
			return err
		}

		idx := folders.Index(oldName)
		if idx < 0 {
			return &common.InvalidOperationError{Op: op, Err: common.ErrFolderNotFound}
		}
		if folders.Contains(newName) {
			return &common.DuplicateFolderError{Name: newName}
		}

		records, err := tx.LoadHistory(ctx)
		if err != nil {
			return err
		}
		records, n := history.RenameFolder(records, oldName, newName)
		if n > 0 {
			if err := tx.SaveHistory(ctx, records); err != nil {
				return err
			}
		}

		folders[idx] = newName
		if err := tx.SaveFolders(ctx, folders); err != nil {
			return err
		}

		current, err := tx.LoadCurrentFolder(ctx)
		if err != nil {
			return err
		}
		if current == oldName {
			return tx.SaveCurrentFolder(ctx, newName)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sess.Folders = folders
	if sess.CurrentFolder == oldName {
		sess.CurrentFolder = newName
	}
	r.log.Info(ctx, "folder renamed", "from", oldName, "to", newName)
	return nil
}

// Delete removes a user folder. Its records move to the default folder.
func (r *Registry) Delete(ctx context.Context, sess *session.Session, name string) error {
	const op = "delete folder"

	if name == common.DefaultFolder {
		return &common.InvalidOperationError{Op: op, Reason: "the default folder cannot be deleted"}
	}

	var folders models.Folders
	err := r.store.Atomic(ctx, func(ctx context.Context, tx storage.Store) error {
		var err error
		folders, err = list(ctx, tx)
		if err != nil {
			return err
		}

		idx := folders.Index(name)
		if idx < 0 {
			return &common.InvalidOperationError{Op: op, Err: common.ErrFolderNotFound}
		}

		// records first: a failed cascade must leave the folder registered
		records, err := tx.LoadHistory(ctx)
		if err != nil {
			return err
		}
		records, n := history.RenameFolder(records, name, common.DefaultFolder)
		if n > 0 {
			if err := tx.SaveHistory(ctx, records); err != nil {
				return err
			}
		}

		folders = append(folders[:idx:idx], folders[idx+1:]...)
		if err := tx.SaveFolders(ctx, folders); err != nil {
			return err
		}

		current, err := tx.LoadCurrentFolder(ctx)
		if err != nil {
			return err
		}
		if current == name {
			return tx.SaveCurrentFolder(ctx, common.DefaultFolder)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sess.Folders = folders
	if sess.CurrentFolder == name {
		sess.CurrentFolder = common.DefaultFolder
	}
	r.log.Info(ctx, "folder deleted", "folder", name)
	return nil
}

// Select makes name the current folder. Unknown names select the default
// folder. The folder actually selected is returned.
func (r *Registry) Select(ctx context.Context, sess *session.Session, name string) (string, error) {
	folders, err := r.List(ctx)
	if err != nil {
		return "", err
	}
	if !folders.Contains(name) {
		name = common.DefaultFolder
	}

	if err := r.store.SaveCurrentFolder(ctx, name); err != nil {
		return "", err
	}

	sess.CurrentFolder = name
	sess.Folders = folders
	return name, nil
}
