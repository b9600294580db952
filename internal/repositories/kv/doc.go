// Package kv provides the Record Store persistence layer: opaque values
// addressed by key, with whole-value get and set only.
//
// # Overview
//
// Two tables share the same shape: TableSettings holds the upload history,
// the folder registry and UI preferences; TableSecrets keeps credentials
// apart from them.
//
// Key Types
//
//   - type Repository: contract used by the storage layer
//   - type SQLiteRepository: SQLite implementation over dbx.DBTX
//   - type PostgresRepository: PostgreSQL implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db, kv.TableSettings)
//	_ = repo.Set(ctx, "currentFolder", []byte(`"Work"`))
//	v, _ := repo.Get(ctx, "currentFolder") // nil, nil when absent
package kv
