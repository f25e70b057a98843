package roster

import (
	"encoding/csv"
	"fmt"
	"io"
)

// SampleRecords returns the example roster offered as a template download.
func SampleRecords() []Record {
	return []Record{
		{Name: "John Doe", RegistrationNumber: "REG001", Section: "A", Branch: "CSE", Semester: "1", Date: "2024-01-15", From: "09:00", To: "17:00"},
		{Name: "Jane Smith", RegistrationNumber: "REG002", Section: "B", Branch: "ECE", Semester: "2", Date: "2024-01-15", From: "10:00", To: "16:00"},
		{Name: "Mike Johnson", RegistrationNumber: "REG003", Section: "A", Branch: "CSE", Semester: "1", Date: "2024-01-15", From: "09:00", To: "17:00"},
	}
}

// WriteCSV writes records with a header row using the canonical column names.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(AllColumns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Name, r.RegistrationNumber, r.Section, r.Branch, r.Semester, r.Date, r.From, r.To}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
