package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/dbx"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
	"github.com/dmitrijs2005/imgkeeper/internal/repositories/kv"
)

// Store is the typed Record Store.
type Store interface {
	// LoadHistory returns the full upload history exactly as stored, legacy
	// records included. Absent → empty list.
	LoadHistory(ctx context.Context) (models.HistoryList, error)
	SaveHistory(ctx context.Context, list models.HistoryList) error

	// LoadFolders returns the stored folder registry as is.
	// Absent → [DefaultFolder].
	LoadFolders(ctx context.Context) (models.Folders, error)
	SaveFolders(ctx context.Context, folders models.Folders) error

	// LoadCurrentFolder returns the selected folder. Absent → DefaultFolder.
	LoadCurrentFolder(ctx context.Context) (string, error)
	SaveCurrentFolder(ctx context.Context, name string) error

	// LoadThumbnailSize returns the thumbnail size. Absent → DefaultThumbnailSize.
	LoadThumbnailSize(ctx context.Context) (int, error)
	SaveThumbnailSize(ctx context.Context, px int) error

	// LoadClientID returns the API client id. Absent → "".
	LoadClientID(ctx context.Context) (string, error)
	SaveClientID(ctx context.Context, id string) error

	// Atomic runs fn against a Store bound to a single transaction. Nested
	// calls reuse the outer transaction.
	Atomic(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type repoFactory func(db dbx.DBTX, table string) kv.Repository

// SQLStore implements Store over the settings and secrets tables.
type SQLStore struct {
	db       *sql.DB
	newRepo  repoFactory
	settings kv.Repository
	secrets  kv.Repository
	inTx     bool
}

// New wraps an already migrated database.
func New(db *sql.DB, newRepo repoFactory) *SQLStore {
	return &SQLStore{
		db:       db,
		newRepo:  newRepo,
		settings: newRepo(db, kv.TableSettings),
		secrets:  newRepo(db, kv.TableSecrets),
	}
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		bound := &SQLStore{
			db:       s.db,
			newRepo:  s.newRepo,
			settings: s.newRepo(tx, kv.TableSettings),
			secrets:  s.newRepo(tx, kv.TableSecrets),
			inTx:     true,
		}
		return fn(ctx, bound)
	})
}

func (s *SQLStore) LoadHistory(ctx context.Context) (models.HistoryList, error) {
	list := models.HistoryList{}
	if _, err := load(ctx, s.settings, common.KeyUploadHistory, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *SQLStore) SaveHistory(ctx context.Context, list models.HistoryList) error {
	if list == nil {
		list = models.HistoryList{}
	}
	return save(ctx, s.settings, common.KeyUploadHistory, list)
}

func (s *SQLStore) LoadFolders(ctx context.Context) (models.Folders, error) {
	var folders models.Folders
	found, err := load(ctx, s.settings, common.KeyFolders, &folders)
	if err != nil {
		return nil, err
	}
	if !found || folders == nil {
		return models.Folders{common.DefaultFolder}, nil
	}
	return folders, nil
}

func (s *SQLStore) SaveFolders(ctx context.Context, folders models.Folders) error {
	return save(ctx, s.settings, common.KeyFolders, folders)
}

func (s *SQLStore) LoadCurrentFolder(ctx context.Context) (string, error) {
	name := common.DefaultFolder
	if _, err := load(ctx, s.settings, common.KeyCurrentFolder, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (s *SQLStore) SaveCurrentFolder(ctx context.Context, name string) error {
	return save(ctx, s.settings, common.KeyCurrentFolder, name)
}

func (s *SQLStore) LoadThumbnailSize(ctx context.Context) (int, error) {
	px := common.DefaultThumbnailSize
	if _, err := load(ctx, s.settings, common.KeyThumbnailSize, &px); err != nil {
		return 0, err
	}
	return px, nil
}

func (s *SQLStore) SaveThumbnailSize(ctx context.Context, px int) error {
	return save(ctx, s.settings, common.KeyThumbnailSize, px)
}

func (s *SQLStore) LoadClientID(ctx context.Context) (string, error) {
	var id string
	if _, err := load(ctx, s.secrets, common.KeyClientID, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLStore) SaveClientID(ctx context.Context, id string) error {
	return save(ctx, s.secrets, common.KeyClientID, id)
}

// load decodes the value stored under key into dst. dst is left untouched
// when the key is absent.
func load(ctx context.Context, repo kv.Repository, key string, dst any) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func save(ctx context.Context, repo kv.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, raw)
}
