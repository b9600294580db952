// Package upload talks to the image hosting backends.
//
// A Provider turns a Source (file bytes or a remote URL) into a public link
// plus an opaque deletehash that can later be passed back to Delete.
package upload

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/imgkeeper/internal/config"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
)

// Result is what a successful upload returns.
type Result struct {
	Link       string
	Deletehash string
}

// Provider is a hosting backend. credential is the configured API client
// id; providers that do not need one ignore it.
type Provider interface {
	Upload(ctx context.Context, src Source, credential string) (Result, error)
	Delete(ctx context.Context, deletehash, credential string) error
	RequiresCredential() bool
}

// NewProvider builds the provider selected in cfg.
func NewProvider(ctx context.Context, cfg *config.Config, log logging.Logger) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderImgur:
		return NewImgurProvider(cfg.ImgurBaseURL, cfg.RequestTimeout, log), nil
	case config.ProviderS3:
		return NewS3Provider(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown upload provider %q", cfg.Provider)
	}
}
