package roster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Branch: "ECE", Semester: "2"},
		{Branch: "CSE", Semester: "10"},
		{Branch: "CSE", Semester: "1"},
		{Branch: "IT", Semester: "x"},
		{Branch: "CSE", Semester: "1"},
	}

	s := Summarize(records)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, []Count{{"CSE", 3}, {"ECE", 1}, {"IT", 1}}, s.Branches)
	assert.Equal(t, []Count{{"1", 2}, {"2", 1}, {"10", 1}, {"x", 1}}, s.Semesters)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.Branches)
	assert.Empty(t, s.Semesters)
}

func TestWriteCSV_RoundTripsSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SampleRecords()))

	records, err := Read(&buf, "sample_od_data.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, SampleRecords(), records)
}
