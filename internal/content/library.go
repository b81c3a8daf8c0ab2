package content

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Default content file names inside the data directory
const (
	VocabCSVFile    = "vocab_n5.csv"
	VocabJSONFile   = "vocab_n5.json"
	KanjiJSONFile   = "kanji_n5.json"
	GrammarJSONFile = "grammar_n5.json"
)

// Library reads and writes the N5 content files. A missing file is
// treated as an empty collection; a file that fails to parse is logged
// and also treated as empty so the app keeps working.
type Library struct {
	dataDir string
}

// NewLibrary creates a library rooted at the given data directory
func NewLibrary(dataDir string) *Library {
	return &Library{dataDir: dataDir}
}

// DataDir returns the directory the library reads from
func (l *Library) DataDir() string {
	return l.dataDir
}

func (l *Library) path(name string) string {
	return filepath.Join(l.dataDir, name)
}

// readJSONFile loads a JSON collection file into dst. It returns false
// when the file is absent or unreadable; a parse failure is logged so
// corruption is distinguishable from "no data yet".
func readJSONFile(path string, dst interface{}) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("content: cannot read %s: %v", path, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("content: malformed %s, treating as empty: %v", path, err)
		return false
	}
	return true
}

// writeJSONFile persists a collection as pretty-printed JSON
func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
