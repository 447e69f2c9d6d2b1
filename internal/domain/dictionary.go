package domain

import "strings"

// DictionaryVersion tags every materialized dictionary. It is not derived
// from the asset itself.
const DictionaryVersion = "20241115"

// DictionaryStatus describes the outcome of ensuring a dictionary database
type DictionaryStatus struct {
	Version string   `json:"version"`
	Path    string   `json:"path"`
	Exists  bool     `json:"exists"`
	Logs    []string `json:"logs"`

	// BytesWritten is set when this call decompressed the database
	BytesWritten int64 `json:"-"`
}

// DatabaseFileName returns the decompressed database name for a language
func DatabaseFileName(language string) string {
	return "dictionary_" + language + ".db"
}

// LanguageFromDatabaseFile reports the language of a decompressed database
// file name
func LanguageFromDatabaseFile(name string) (string, bool) {
	lang, ok := strings.CutPrefix(name, "dictionary_")
	if !ok {
		return "", false
	}
	lang, ok = strings.CutSuffix(lang, ".db")
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}

// BlobFileName returns the compressed blob name for a language
func BlobFileName(language string) string {
	return DatabaseFileName(language) + ".gz"
}

// DictionaryEntry is one headword row of a dictionary database
type DictionaryEntry struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Meanings      []string `json:"meanings"`
	Notes         []string `json:"notes"`
	Synonyms      []string `json:"synonyms"`
	SeeAlso       []string `json:"seeAlso"`
}

// BackendStatus summarizes the local installation
type BackendStatus struct {
	DictionaryVersion string   `json:"dictionaryVersion"`
	DataDir           string   `json:"dataDir"`
	WordsDB           string   `json:"wordsDb"`
	Dictionaries      []string `json:"dictionaries"`
	CanDownload       bool     `json:"canDownload"`
	CanTranslate      bool     `json:"canTranslate"`
}
