package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/example/n5bot/pkg/models"
)

// VocabItems loads the N5 vocabulary list. When vocab_n5.csv exists it
// takes priority (it is the format the importer writes and holds the
// full list); vocab_n5.json is the fallback starter set. Both produce
// the same item shape.
func (l *Library) VocabItems() []models.VocabItem {
	if items := l.vocabFromCSV(); len(items) > 0 {
		return items
	}
	return l.vocabFromJSON()
}

func (l *Library) vocabFromJSON() []models.VocabItem {
	var items []models.VocabItem
	readJSONFile(l.path(VocabJSONFile), &items)
	return items
}

func (l *Library) vocabFromCSV() []models.VocabItem {
	f, err := os.Open(l.path(VocabCSVFile))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("content: cannot read %s: %v", l.path(VocabCSVFile), err)
		}
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if err != io.EOF {
			log.Printf("content: malformed %s, treating as empty: %v", l.path(VocabCSVFile), err)
		}
		return nil
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var items []models.VocabItem
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("content: malformed row in %s, treating file as empty: %v", l.path(VocabCSVFile), err)
			return nil
		}

		id, err := strconv.Atoi(strings.TrimSpace(field(row, "id")))
		if err != nil {
			continue // rows without a numeric id are skipped
		}

		items = append(items, models.VocabItem{
			ID:        id,
			WordJP:    field(row, "word_jp"),
			Reading:   field(row, "reading"),
			MeaningES: field(row, "meaning_es"),
			Pos:       field(row, "pos"),
			Tags:      splitTags(field(row, "tags")),
		})
	}
	return items
}

// SaveVocabItems rewrites the full vocabulary list to vocab_n5.csv
func (l *Library) SaveVocabItems(items []models.VocabItem) error {
	path := l.path(VocabCSVFile)
	if err := os.MkdirAll(l.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "word_jp", "reading", "meaning_es", "pos", "tags"}); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			strconv.Itoa(item.ID),
			item.WordJP,
			item.Reading,
			item.MeaningES,
			item.Pos,
			strings.Join(item.Tags, ";"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// splitTags parses the semicolon-separated tags column
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
