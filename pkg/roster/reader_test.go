package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const fullCSV = `Name,Registration Number,Section,Branch,Semester,Date,From,To
John Doe,REG001,A,CSE,1,2024-01-15,09:00,17:00
Jane Smith,REG002,B,ECE,2,2024-01-15,nan,NaN
`

func TestReadCSV(t *testing.T) {
	records, err := Read(strings.NewReader(fullCSV), "roster.csv", Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Name: "John Doe", RegistrationNumber: "REG001", Section: "A", Branch: "CSE",
		Semester: "1", Date: "2024-01-15", From: "09:00", To: "17:00",
	}, records[0])

	// dataframe placeholders must never reach the document
	assert.Empty(t, records[1].From)
	assert.Empty(t, records[1].To)
}

func TestReadCSV_HeaderCaseAndBOM(t *testing.T) {
	in := "\ufeff name , REGISTRATION NUMBER,section,Branch,semester,date,from,to\n" +
		"A,R1,S,IT,3,d,,\n" +
		",,,,,,,\n"

	records, err := Read(strings.NewReader(in), "x.CSV", Options{})
	require.NoError(t, err)
	require.Len(t, records, 1, "blank rows are skipped")
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "R1", records[0].RegistrationNumber)
	assert.Equal(t, "3", records[0].Semester)
}

func TestReadCSV_MissingColumns(t *testing.T) {
	in := "Name,Branch,Semester\nA,CSE,1\n"

	_, err := Read(strings.NewReader(in), "roster.csv", Options{})
	require.Error(t, err)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{ColRegistrationNumber, ColSection, ColDate, ColFrom, ColTo}, missing.Columns)
	assert.Equal(t, "missing columns: Registration Number, Section, Date, From, To", err.Error())
}

func TestRead_EventInjection(t *testing.T) {
	in := "Name,Registration Number,Section,Branch,Semester\nA,R1,S,CSE,5\nB,R2,S,ECE,6\n"
	ev := Event{Date: "2024-03-01", From: "10:00", To: "12:00"}

	records, err := Read(strings.NewReader(in), "roster.csv", Options{Event: &ev})
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "2024-03-01", r.Date)
		assert.Equal(t, "10:00", r.From)
		assert.Equal(t, "12:00", r.To)
	}
}

func TestRead_EventOverridesFileSchedule(t *testing.T) {
	ev := Event{Date: "2024-02-02"}

	records, err := Read(strings.NewReader(fullCSV), "roster.csv", Options{Event: &ev})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02", records[0].Date)
	assert.Empty(t, records[0].From)
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := Read(strings.NewReader(""), "roster.xls", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Read(strings.NewReader(""), "roster.txt", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRead_EmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""), "roster.csv", Options{})
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Name", "Registration Number", "Section", "Branch", "Semester", "Date", "From", "To"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []interface{}{"Jane", "REG9", "C", "MECH", 7, "2024-01-15", "09:00"}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := Read(bytes.NewReader(buf.Bytes()), "roster.xlsx", Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane", records[0].Name)
	assert.Equal(t, "MECH", records[0].Branch)
	assert.Equal(t, "7", records[0].Semester)
	assert.Equal(t, "09:00", records[0].From)
	assert.Empty(t, records[0].To, "short rows pad with empty cells")
}
