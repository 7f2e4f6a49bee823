package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/config"
	"github.com/five82/aidfinder/internal/favorites"
	"github.com/five82/aidfinder/internal/kv"
	"github.com/five82/aidfinder/internal/locale"
	"github.com/five82/aidfinder/internal/logging"
	"github.com/five82/aidfinder/internal/prefs"
	"github.com/five82/aidfinder/internal/search"
	"github.com/five82/aidfinder/internal/share"
	"github.com/five82/aidfinder/internal/ui"
)

// Options configure the AidFinder application.
type Options struct {
	ConfigPath string
	Language   string // session override; empty uses the stored preference
	Verbose    bool
}

// Env is the loaded application state shared by the TUI and the CLI
// subcommands.
type Env struct {
	Config    config.Config
	Logger    *zap.Logger
	Storage   kv.Store
	Table     *locale.Table
	Index     *search.Index
	Favorites *favorites.Store
	Prefs     *prefs.Store
	Language  string
}

// Open loads configuration, opens storage and reads the persisted stores.
// The caller must Close the returned Env.
func Open(ctx context.Context, opts Options, host prefs.Host) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	storage, err := kv.Open(ctx, cfg.Storage, cfg.DataDir)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}

	table := locale.Default()
	programs := catalog.Default()

	favs := favorites.New(storage, logger)
	favs.Load(ctx)

	userPrefs := prefs.New(storage, table, logger)
	current := userPrefs.Load(ctx, host)

	lang := current.Language
	if opts.Language != "" {
		if !table.Has(opts.Language) {
			_ = storage.Close()
			_ = logger.Sync()
			return nil, fmt.Errorf("unsupported language %q (supported: %v)", opts.Language, table.Supported())
		}
		lang = opts.Language
	}

	logger.Info("aidfinder started",
		zap.String("storage", cfg.Storage),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("programs", len(programs)),
		zap.Int("favorites", favs.Len()),
		zap.String("language", lang))

	return &Env{
		Config:    cfg,
		Logger:    logger,
		Storage:   storage,
		Table:     table,
		Index:     search.NewIndex(programs, table),
		Favorites: favs,
		Prefs:     userPrefs,
		Language:  lang,
	}, nil
}

// Close releases storage and flushes the logger.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	var errs []error
	if e.Storage != nil {
		if err := e.Storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if e.Logger != nil {
		_ = e.Logger.Sync()
	}
	return errors.Join(errs...)
}

// Run boots the AidFinder TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts, prefs.HostFromEnv())
	if err != nil {
		return err
	}
	defer env.Close()

	uiOpts := ui.Options{
		Context:   ctx,
		Index:     env.Index,
		Table:     env.Table,
		Favorites: env.Favorites,
		Prefs:     env.Prefs,
		Language:  env.Language,
		Logger:    env.Logger,
		Open:      share.OpenURL,
		Copy:      share.CopyToClipboard,
	}
	return ui.Run(uiOpts)
}
