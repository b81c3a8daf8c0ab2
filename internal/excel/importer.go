// Package excel imports vocabulary lists from spreadsheet files into
// the content library. Both .xlsx and plain .csv are accepted and
// produce the same VocabItem shape.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/n5bot/internal/content"
	"github.com/example/n5bot/pkg/models"
)

// ImportConfig defines where the vocabulary columns live in the sheet
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	WordColumn    string // Column with the Japanese word
	ReadingColumn string // Column with the kana reading
	MeaningColumn string // Column with the Spanish meaning
	PosColumn     string // Column with the part of speech
	TagsColumn    string // Column with semicolon-separated tags
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:      path,
		WordColumn:    "A",
		ReadingColumn: "B",
		MeaningColumn: "C",
		PosColumn:     "D",
		TagsColumn:    "E",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportVocabulary reads the spreadsheet and merges its rows into the
// library's vocabulary list. Existing words (matched by the Japanese
// writing) are updated in place, new ones get the next free id.
func ImportVocabulary(lib *content.Library, config ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error

	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSVRows(config.FilePath)
	} else {
		rows, err = readExcelRows(config)
	}
	if err != nil {
		return nil, err
	}

	items := lib.VocabItems()

	// Map existing words for merge, and find the next free id
	byWord := make(map[string]int, len(items))
	nextID := 1
	for i, item := range items {
		byWord[item.WordJP] = i
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}

	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		item, err := rowToItem(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		if idx, ok := byWord[item.WordJP]; ok {
			item.ID = items[idx].ID
			items[idx] = item
			result.Updated++
		} else {
			item.ID = nextID
			nextID++
			byWord[item.WordJP] = len(items)
			items = append(items, item)
			result.Created++
		}
	}

	if err := lib.SaveVocabItems(items); err != nil {
		return nil, fmt.Errorf("failed to save vocabulary: %v", err)
	}
	return result, nil
}

// readExcelRows loads all rows of the configured sheet
func readExcelRows(config ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

// readCSVRows loads all rows of a CSV file
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowToItem builds a vocab item from one sheet row
func rowToItem(row []string, config ImportConfig) (models.VocabItem, error) {
	cell := func(column string) string {
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	word := cell(config.WordColumn)
	meaning := cell(config.MeaningColumn)
	if word == "" || meaning == "" {
		return models.VocabItem{}, fmt.Errorf("word and meaning are required")
	}

	var tags []string
	for _, t := range strings.Split(cell(config.TagsColumn), ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return models.VocabItem{
		WordJP:    word,
		Reading:   cell(config.ReadingColumn),
		MeaningES: meaning,
		Pos:       cell(config.PosColumn),
		Tags:      tags,
	}, nil
}

// columnToIndex converts an Excel column letter ("A", "B", ... "AA") to
// a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, c := range column {
		if c < 'A' || c > 'Z' {
			return -1
		}
		idx = idx*26 + int(c-'A') + 1
	}
	return idx - 1
}
