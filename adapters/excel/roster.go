package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"teamdash/internal/errors"
	"teamdash/internal/logger"
	"teamdash/models"
)

// Required roster columns, matched case-insensitively
const (
	ColumnName         = "name"
	ColumnTitle        = "title"
	ColumnCompensation = "compensation"
)

// RosterReader loads team members from .xlsx, .csv or .yaml files. Rows are
// read in file order, so the first data row becomes the most recently joined
// member.
type RosterReader struct {
	filePath string
	fileType string // "xlsx", "csv" or "yaml"
	log      *logger.Logger
}

// NewRosterReader creates a reader for filePath, choosing the format by extension
func NewRosterReader(filePath string, log *logger.Logger) *RosterReader {
	fileType := "xlsx"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		fileType = "csv"
	case ".yaml", ".yml":
		fileType = "yaml"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RosterReader{filePath: filePath, fileType: fileType, log: log.With("component", "roster_reader")}
}

// Read parses the roster file
func (r *RosterReader) Read() ([]models.Person, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.ImportError(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "yaml":
		rows, err = r.readYAMLRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, errors.ImportError(r.filePath, err)
	}

	persons, err := parseRows(rows)
	if err != nil {
		return nil, errors.ImportError(r.filePath, err)
	}

	r.log.Info("roster loaded", "file", r.filePath, "type", r.fileType, "members", len(persons))
	return persons, nil
}

// readExcelRows reads the first sheet of the workbook
func (r *RosterReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func (r *RosterReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// yamlRoster is the document shape of a YAML roster file
type yamlRoster struct {
	Members []struct {
		Name         string `yaml:"name"`
		Title        string `yaml:"title"`
		Compensation string `yaml:"compensation"`
	} `yaml:"members"`
}

// readYAMLRows flattens a YAML roster into header + data rows
func (r *RosterReader) readYAMLRows() ([][]string, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, err
	}

	var doc yamlRoster
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml roster: %w", err)
	}

	rows := make([][]string, 0, len(doc.Members)+1)
	rows = append(rows, []string{ColumnName, ColumnTitle, ColumnCompensation})
	for _, m := range doc.Members {
		rows = append(rows, []string{m.Name, m.Title, m.Compensation})
	}
	return rows, nil
}

// parseRows converts a header row plus data rows into persons.
// Blank rows are skipped.
func parseRows(rows [][]string) ([]models.Person, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster has no header row")
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{ColumnName, ColumnTitle, ColumnCompensation} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	persons := make([]models.Person, 0, len(rows)-1)
	for i, row := range rows[1:] {
		name := cell(row, columns[ColumnName])
		title := cell(row, columns[ColumnTitle])
		rawComp := cell(row, columns[ColumnCompensation])
		if name == "" && title == "" && rawComp == "" {
			continue
		}

		compensation, err := parseCompensation(rawComp)
		if err != nil {
			// +2: one for the header, one for 1-based row numbers
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		persons = append(persons, models.Person{
			ID:           uuid.New(),
			Name:         name,
			Title:        title,
			Compensation: compensation,
		})
	}
	return persons, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseCompensation accepts plain integers as well as "$1,200" style values
func parseCompensation(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid compensation %q", raw)
	}
	return value, nil
}
