package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"wortkiste/assets"
	"wortkiste/internal/adapters/download"
	"wortkiste/internal/adapters/filesystem"
	"wortkiste/internal/adapters/sources"
	"wortkiste/internal/adapters/sqlite"
	"wortkiste/internal/adapters/translate"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/config"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// App holds the adapters shared by the CLI and the MCP server
type App struct {
	Config       *config.Config
	Logger       *logrus.Logger
	Store        *filesystem.Store
	Materializer *commands.Materializer
	Lookup       *sqlite.DictionaryLookup

	downloader ports.BlobDownloader
	translator ports.Translator

	mu      sync.Mutex
	wordsDB *sqlx.DB
	words   *sqlite.WordRepository
}

// New wires the application from configuration
func New(cfg *config.Config, logger *logrus.Logger) (*App, error) {
	store := filesystem.NewStore()

	a := &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Lookup: sqlite.NewDictionaryLookup(),
	}
	a.Materializer = commands.NewMaterializer(store, cfg.DataDirectory, logger, Sources(cfg)...)

	if cfg.Download.BaseURL != "" {
		client, err := download.NewClient(cfg.Download.BaseURL, cfg.Download.Timeout)
		if err != nil {
			return nil, err
		}
		a.downloader = client
	}

	if cfg.Translate.BaseURL != "" {
		client, err := translate.NewClient(cfg.Translate.BaseURL, cfg.Translate.APIKey, cfg.Translate.Timeout)
		if err != nil {
			return nil, err
		}
		a.translator = client
	}

	return a, nil
}

// Sources returns the configured candidate sources in search order
func Sources(cfg *config.Config) []ports.AssetSource {
	return []ports.AssetSource{
		sources.NewFSSource("bundled", assets.Bundle(), cfg.Assets.BundledPrefixes...),
		sources.NewExecutableSource("development", cfg.Assets.DevPrefixes...),
	}
}

// FetchCommand returns a download command for language. Without a
// configured base URL the command fails validation.
func (a *App) FetchCommand(language string) *commands.FetchCommand {
	return commands.NewFetchCommand(a.downloader, a.Store, a.Config.DataDirectory, language)
}

// TranslateCommand returns a translation command. Empty languages fall back
// to the configured pair; without a configured server the command fails
// validation.
func (a *App) TranslateCommand(text, source, target string) *commands.TranslateCommand {
	if source == "" {
		source = a.Config.Translate.Source
	}
	if target == "" {
		target = a.Config.Translate.Target
	}
	return commands.NewTranslateCommand(a.translator, text, source, target)
}

// AddWordCommand returns an add command that translates a missing
// translation when a translation server is configured
func (a *App) AddWordCommand(repo ports.WordRepository, original, translation, article string) *commands.AddWordCommand {
	return commands.NewAddWordCommand(repo, original, translation, article).
		WithTranslator(a.translator, a.Config.Translate.Source, a.Config.Translate.Target)
}

// Status reports the data directory, the materialized dictionaries and which
// remote services are configured
func (a *App) Status() (*domain.BackendStatus, error) {
	dir, err := a.Config.DataDirectory()
	if err != nil {
		return nil, err
	}
	words, err := a.Config.WordsPath()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}
	languages := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() {
			return "", false
		}
		return domain.LanguageFromDatabaseFile(e.Name())
	})

	return &domain.BackendStatus{
		DictionaryVersion: domain.DictionaryVersion,
		DataDir:           dir,
		WordsDB:           words,
		Dictionaries:      languages,
		CanDownload:       a.downloader != nil,
		CanTranslate:      a.translator != nil,
	}, nil
}

// Words opens and migrates the words database on first use
func (a *App) Words(ctx context.Context) (*sqlite.WordRepository, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.words != nil {
		return a.words, nil
	}
	db, err := a.openWords()
	if err != nil {
		return nil, err
	}
	if _, err := sqlite.Migrate(ctx, db, a.Logger); err != nil {
		return nil, fmt.Errorf("failed to migrate words database: %w", err)
	}
	a.words = sqlite.NewWordRepository(db)
	return a.words, nil
}

// Migrate applies pending words migrations and returns their versions
func (a *App) Migrate(ctx context.Context) ([]int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	db, err := a.openWords()
	if err != nil {
		return nil, err
	}
	return sqlite.Migrate(ctx, db, a.Logger)
}

func (a *App) openWords() (*sqlx.DB, error) {
	if a.wordsDB != nil {
		return a.wordsDB, nil
	}
	path, err := a.Config.WordsPath()
	if err != nil {
		return nil, err
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	a.wordsDB = db
	return db, nil
}

// Close releases the words database
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.wordsDB == nil {
		return nil
	}
	err := a.wordsDB.Close()
	a.wordsDB = nil
	a.words = nil
	return err
}
