package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyRoster is returned when a file has no header row at all.
	ErrEmptyRoster = errors.New("roster file is empty")
)

// MissingColumnsError lists the required headers a roster file lacks.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Columns, ", "))
}

// Options controls how a roster table is turned into records.
type Options struct {
	// Event, when set, is injected into every record and makes the
	// Date/From/To columns optional.
	Event *Event
}

// missingMarkers are placeholder strings spreadsheets and dataframe exports
// leave in empty time cells.
var missingMarkers = map[string]bool{"nan": true, "none": true, "nat": true, "null": true}

// ReadFile opens path and parses it according to its extension.
func ReadFile(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	return Read(f, filepath.Base(path), opts)
}

// Read parses a roster from r. name is only used to pick the format
// (".csv" or ".xlsx").
func Read(r io.Reader, name string, opts Options) ([]Record, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s (expected .csv or .xlsx)", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, err
	}

	return FromRows(rows, opts)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	// Excel's "CSV UTF-8" export prefixes a byte order mark
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyRoster
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// FromRows converts a header row plus data rows into records.
// Header matching ignores case and surrounding whitespace; blank rows are skipped.
func FromRows(rows [][]string, opts Options) ([]Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyRoster
	}

	fold := cases.Fold()
	index := make(map[string]int)
	for i, h := range rows[0] {
		key := fold.String(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	required := baseColumns
	if opts.Event == nil {
		required = AllColumns()
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[fold.String(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, col string) string {
		i, ok := index[fold.String(col)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, Record{
			Name:               cell(row, ColName),
			RegistrationNumber: cell(row, ColRegistrationNumber),
			Section:            cell(row, ColSection),
			Branch:             cell(row, ColBranch),
			Semester:           cell(row, ColSemester),
			Date:               cell(row, ColDate),
			From:               blankMissing(cell(row, ColFrom)),
			To:                 blankMissing(cell(row, ColTo)),
		})
	}

	if opts.Event != nil {
		records = ApplyEvent(records, *opts.Event)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func blankMissing(v string) string {
	if missingMarkers[strings.ToLower(v)] {
		return ""
	}
	return v
}
