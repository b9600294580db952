package kv

import (
	"context"
	"fmt"
)

// Table names accepted by the repositories.
const (
	TableSettings = "settings"
	TableSecrets  = "secrets"
)

// Repository stores opaque values by key. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

func checkTable(table string) string {
	switch table {
	case TableSettings, TableSecrets:
		return table
	default:
		panic(fmt.Sprintf("kv: unknown table %q", table))
	}
}
