package domain

import (
	"encoding/json"
	"testing"
)

func TestFileNames(t *testing.T) {
	tests := []struct {
		language string
		db       string
		blob     string
	}{
		{"de", "dictionary_de.db", "dictionary_de.db.gz"},
		{"fr", "dictionary_fr.db", "dictionary_fr.db.gz"},
		{"pt-BR", "dictionary_pt-BR.db", "dictionary_pt-BR.db.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			if got := DatabaseFileName(tt.language); got != tt.db {
				t.Errorf("DatabaseFileName(%q) = %q, want %q", tt.language, got, tt.db)
			}
			if got := BlobFileName(tt.language); got != tt.blob {
				t.Errorf("BlobFileName(%q) = %q, want %q", tt.language, got, tt.blob)
			}
		})
	}
}

func TestLanguageFromDatabaseFile(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"dictionary_de.db", "de", true},
		{"dictionary_pt-BR.db", "pt-BR", true},
		{"dictionary_de.db.gz", "", false},
		{"dictionary_.db", "", false},
		{"words.db", "", false},
	}

	for _, tt := range tests {
		got, ok := LanguageFromDatabaseFile(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LanguageFromDatabaseFile(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWordLabel(t *testing.T) {
	if got := (Word{Original: "Hund", Article: "der"}).Label(); got != "der Hund" {
		t.Errorf("Label() = %q", got)
	}
	if got := (Word{Original: "laufen"}).Label(); got != "laufen" {
		t.Errorf("Label() = %q", got)
	}
}

func TestDictionaryStatusJSON(t *testing.T) {
	data, err := json.Marshal(DictionaryStatus{Logs: []string{"x"}, BytesWritten: 10})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"","path":"","exists":false,"logs":["x"]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
