package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortkiste/internal/application"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/config"
	"wortkiste/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		DataDir: t.TempDir(),
		WordsDB: "words.db",
		Translate: config.TranslateConfig{
			Source: "de",
			Target: "en",
		},
		Assets: config.AssetsConfig{
			BundledPrefixes: []string{"", "public"},
			DevPrefixes:     []string{"../public"},
		},
	}
}

func TestApp_Words(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	cfg := testConfig(t)

	a, err := New(cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	applied, err := a.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, applied)

	repo, err := a.Words(ctx)
	require.NoError(t, err)
	_, err = repo.Add(ctx, domain.Word{Original: "Baum", Translation: "tree", Article: "der"})
	require.NoError(t, err)

	same, err := a.Words(ctx)
	require.NoError(t, err)
	assert.Same(t, repo, same)

	assert.FileExists(t, filepath.Join(cfg.DataDir, "words.db"))
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestApp_EnsureMissingDictionary(t *testing.T) {
	logger, _ := test.NewNullLogger()
	a, err := New(testConfig(t), logger)
	require.NoError(t, err)

	status, err := a.Materializer.Ensure(context.Background(), "xx")
	require.NoError(t, err)
	assert.False(t, status.Exists)
	assert.Contains(t, status.Logs, "Trying bundled: dictionary_xx.db.gz")
	assert.Contains(t, status.Logs, "Trying bundled: public/dictionary_xx.db.gz")
}

func TestApp_Fetch(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("without base URL", func(t *testing.T) {
		a, err := New(testConfig(t), logger)
		require.NoError(t, err)
		err = a.FetchCommand("de").Validate()
		var ve *application.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, application.ErrNotConfigured.Error())
	})

	t.Run("invalid base URL", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Download.BaseURL = "::nope"
		_, err := New(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("configured", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Download.BaseURL = "https://example.com/dicts"
		a, err := New(cfg, logger)
		require.NoError(t, err)
		assert.NoError(t, a.FetchCommand("de").Validate())
	})
}

func TestApp_EnsureDownloadNotConfigured(t *testing.T) {
	logger, _ := test.NewNullLogger()
	a, err := New(testConfig(t), logger)
	require.NoError(t, err)

	_, err = commands.EnsureOrFetch(context.Background(), a.Materializer, a.FetchCommand("xx"))
	var ve *application.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "baseURL", ve.Field)
}

func TestApp_Translate(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()

	t.Run("without base URL", func(t *testing.T) {
		a, err := New(testConfig(t), logger)
		require.NoError(t, err)

		_, err = a.TranslateCommand("Hund", "", "").Execute(ctx)
		var ve *application.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, application.ErrNotConfigured.Error())
	})

	t.Run("configured", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			translations := map[string]string{"de>en:Hund": "dog", "fr>en:chat": "cat"}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"translatedText": translations[body["source"]+">"+body["target"]+":"+body["q"]],
			})
		}))
		defer server.Close()

		cfg := testConfig(t)
		cfg.Translate.BaseURL = server.URL
		a, err := New(cfg, logger)
		require.NoError(t, err)
		defer a.Close()

		result, err := a.TranslateCommand("Hund", "", "").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dog", result.Translation)

		result, err = a.TranslateCommand("chat", "fr", "").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cat", result.Translation)

		repo, err := a.Words(ctx)
		require.NoError(t, err)
		added, err := a.AddWordCommand(repo, "Hund", "", "der").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dog", added.Word.Translation)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Translate.BaseURL = "::nope"
		_, err := New(cfg, logger)
		assert.Error(t, err)
	})
}

func TestApp_Status(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := testConfig(t)
	cfg.Download.BaseURL = "https://example.com/dicts"
	a, err := New(cfg, logger)
	require.NoError(t, err)

	for _, name := range []string{"dictionary_de.db", "dictionary_fr.db", "dictionary_it.db.gz", "words.db"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, name), nil, 0644))
	}

	status, err := a.Status()
	require.NoError(t, err)
	assert.Equal(t, &domain.BackendStatus{
		DictionaryVersion: "20241115",
		DataDir:           cfg.DataDir,
		WordsDB:           filepath.Join(cfg.DataDir, "words.db"),
		Dictionaries:      []string{"de", "fr"},
		CanDownload:       true,
		CanTranslate:      false,
	}, status)

	t.Run("missing data directory", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DataDir = filepath.Join(cfg.DataDir, "not-yet")
		a, err := New(cfg, logger)
		require.NoError(t, err)

		status, err := a.Status()
		require.NoError(t, err)
		assert.Empty(t, status.Dictionaries)
	})
}
