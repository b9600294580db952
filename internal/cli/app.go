package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/imgkeeper/internal/config"
	"github.com/dmitrijs2005/imgkeeper/internal/folders"
	"github.com/dmitrijs2005/imgkeeper/internal/history"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/services"
	"github.com/dmitrijs2005/imgkeeper/internal/session"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
	"github.com/dmitrijs2005/imgkeeper/internal/upload"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    storage.Store
	session  *session.Session
	history  *history.Manager
	folders  *folders.Registry
	uploads  services.UploadService
	settings services.SettingsService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp loads the session from store and wires the services around it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, store storage.Store, provider upload.Provider) (*App, error) {
	sess, err := session.Load(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	hm := history.NewManager(store, log)

	return &App{
		config:   c,
		log:      log,
		store:    store,
		session:  sess,
		history:  hm,
		folders:  folders.NewRegistry(store, log),
		uploads:  services.NewUploadService(provider, hm, log),
		settings: services.NewSettingsService(store, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) status() string {
	return fmt.Sprintf("(%s)", a.session.CurrentFolder)
}

// Run starts the REPL and blocks until it ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to ImgKeeper CLI (type 'help' for commands)")
	if !a.session.HasClientID() && a.config.Provider == config.ProviderImgur {
		fmt.Fprintln(a.out, "Imgur client id is not set; use 'setid' before uploading.")
	}
	runREPL(ctx, a, a.status, a.reader)
}
