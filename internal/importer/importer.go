// Package importer reads drawings and eraser paths from files produced by
// other tools: DXF for drawings, CSV and Excel for recorded eraser paths.
// Problems are collected as messages on the result rather than returned as
// errors, so a partly readable file still yields what could be read.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/loshunter/HeroByte-sub004/internal/model"
	"github.com/xuri/excelize/v2"
)

// PathResult holds an imported eraser path.
type PathResult struct {
	Stroke   model.EraserStroke
	Errors   []string
	Warnings []string
}

// ColumnMapping maps eraser path columns to their indices in the data.
type ColumnMapping struct {
	X     int
	Y     int
	Width int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"x":     {"x", "px", "world x", "pos x"},
	"y":     {"y", "py", "world y", "pos y"},
	"width": {"width", "w", "size", "eraser width", "thickness"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive. Returns the mapping and true if a header was
// detected, or the positional mapping x, y, width and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{X: -1, Y: -1, Width: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "x":
					if mapping.X == -1 {
						mapping.X = i
					}
				case "y":
					if mapping.Y == -1 {
						mapping.Y = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{X: 0, Y: 1, Width: 2}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportEraserPath imports an eraser path from a CSV or Excel file, chosen by
// extension. Each row is one world-space point; the eraser width comes from
// the first row that has one.
func ImportEraserPath(path string) PathResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ImportPathExcel(path)
	default:
		return ImportPathCSV(path)
	}
}

// ImportPathCSV imports an eraser path from a CSV file, detecting the delimiter.
func ImportPathCSV(path string) PathResult {
	result := PathResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	result = importPathFromReader(bytes.NewReader(data), delimiter)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// ImportPathCSVFromReader imports an eraser path from a CSV reader with a known delimiter.
func ImportPathCSVFromReader(reader io.Reader, delimiter rune) PathResult {
	return importPathFromReader(reader, delimiter)
}

func importPathFromReader(reader io.Reader, delimiter rune) PathResult {
	result := PathResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return pathFromRows(records, "Line")
}

// ImportPathExcel imports an eraser path from the first sheet of an Excel file.
func ImportPathExcel(path string) PathResult {
	result := PathResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return pathFromRows(rows, "Row")
}

// pathFromRows is the shared logic for CSV and Excel data: detect a header,
// then parse each row into a point.
func pathFromRows(rows [][]string, rowPrefix string) PathResult {
	result := PathResult{}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, err := strconv.ParseFloat(getCell(rows[0], 0), 64); err != nil {
		// Unrecognised header: skip it and fall back to positional columns
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	widthSet := false
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		x, err := strconv.ParseFloat(getCell(row, mapping.X), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid x '%s'", rowLabel, getCell(row, mapping.X)))
			continue
		}
		y, err := strconv.ParseFloat(getCell(row, mapping.Y), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid y '%s'", rowLabel, getCell(row, mapping.Y)))
			continue
		}
		result.Stroke.Points = append(result.Stroke.Points, model.Point{X: x, Y: y})

		widthStr := getCell(row, mapping.Width)
		if widthStr == "" {
			continue
		}
		w, err := strconv.ParseFloat(widthStr, 64)
		if err != nil || w <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Ignoring invalid width '%s'", rowLabel, widthStr))
			continue
		}
		if !widthSet {
			result.Stroke.Width = w
			widthSet = true
		} else if w != result.Stroke.Width {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: Width %.2f differs from %.2f, using the first", rowLabel, w, result.Stroke.Width))
		}
	}

	if len(result.Stroke.Points) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
