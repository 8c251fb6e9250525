package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gifblock/gifblock-cli/pkg/models"
)

func chtmp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
}

func TestInitProjectStructure(t *testing.T) {
	chtmp(t)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(GifblockDir, SettingsFile)); err != nil {
		t.Errorf("settings file missing after init: %v", err)
	}

	// Running init again must not clobber existing settings.
	settings, _ := ReadSettings()
	settings.Search.Endpoint = "https://proxy.example.com/gifs"
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings() error = %v", err)
	}
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("second InitProjectStructure() error = %v", err)
	}
	reread, _ := ReadSettings()
	if reread.Search.Endpoint != "https://proxy.example.com/gifs" {
		t.Error("init overwrote existing settings")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	chtmp(t)

	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		settings, err := ReadSettings()
		if err != nil {
			t.Fatalf("ReadSettings() error = %v", err)
		}
		if settings.Search.Limit != models.DefaultLimit {
			t.Errorf("Limit = %d, want default %d", settings.Search.Limit, models.DefaultLimit)
		}
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		settings := models.DefaultSettings()
		settings.Search.Endpoint = "https://proxy.example.com/gifs"
		settings.Search.Headers = map[string]string{"Authorization": "Bearer x"}
		settings.Search.DebounceMs = 150

		if err := WriteSettings(settings); err != nil {
			t.Fatalf("WriteSettings() error = %v", err)
		}

		loaded, err := ReadSettings()
		if err != nil {
			t.Fatalf("ReadSettings() error = %v", err)
		}
		if loaded.Search.Endpoint != settings.Search.Endpoint {
			t.Errorf("Endpoint = %q, want %q", loaded.Search.Endpoint, settings.Search.Endpoint)
		}
		if loaded.Search.Headers["Authorization"] != "Bearer x" {
			t.Error("headers did not survive the round trip")
		}
		if loaded.Search.DebounceMs != 150 {
			t.Errorf("DebounceMs = %d, want 150", loaded.Search.DebounceMs)
		}
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	chtmp(t)

	t.Run("MissingFileYieldsEmptyDocument", func(t *testing.T) {
		doc, err := ReadDocument()
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if len(doc.Blocks) != 0 {
			t.Errorf("got %d blocks, want 0", len(doc.Blocks))
		}
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		doc := &Document{
			Blocks: []DocumentBlock{
				{Kind: BlockKindText, Text: "hello"},
				{Kind: BlockKindGIF, GIF: &models.BlockData{
					URL:    "https://x/a.gif",
					Width:  100,
					Height: 80,
					Title:  "cat",
				}},
			},
		}
		if err := WriteDocument(doc); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		loaded, err := ReadDocument()
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if len(loaded.Blocks) != 2 {
			t.Fatalf("got %d blocks, want 2", len(loaded.Blocks))
		}
		if loaded.Blocks[0].Text != "hello" {
			t.Errorf("text block = %q, want %q", loaded.Blocks[0].Text, "hello")
		}
		gif := loaded.Blocks[1].GIF
		if gif == nil || gif.URL != "https://x/a.gif" || gif.Width != 100 {
			t.Errorf("gif block = %+v, want the saved record", gif)
		}
	})
}

func TestLogFilePath(t *testing.T) {
	settings := models.DefaultSettings()
	if got := LogFilePath(settings); got != filepath.Join(GifblockDir, "gifblock.log") {
		t.Errorf("LogFilePath() = %q", got)
	}

	settings.Log.File = "/var/log/gifblock.log"
	if got := LogFilePath(settings); got != "/var/log/gifblock.log" {
		t.Errorf("LogFilePath() with absolute path = %q", got)
	}
}
