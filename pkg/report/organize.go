package report

import (
	"errors"
	"fmt"
	"sort"

	"odgen/pkg/roster"
)

// ErrMalformedRecord is wrapped by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a record whose semester is not an integer.
type MalformedRecordError struct {
	Index              int // 0-based position in the input
	RegistrationNumber string
	Semester           string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: record %d (%s) has semester %q, expected an integer",
		ErrMalformedRecord, e.Index+1, e.RegistrationNumber, e.Semester)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// GroupKey identifies one report section.
type GroupKey struct {
	Semester int
	Branch   string
}

// Group is a run of records sharing a GroupKey, in input order.
type Group struct {
	Key     GroupKey
	Records []roster.Record
}

// Organize sorts records by semester and then branch and splits them into
// groups. Records with equal keys keep their input order. A single
// unparseable semester fails the whole call. The input slice is not modified.
func Organize(records []roster.Record) ([]Group, error) {
	type keyed struct {
		key    GroupKey
		record roster.Record
	}

	rows := make([]keyed, len(records))
	for i, r := range records {
		semester, err := ParseSemester(r.Semester)
		if err != nil {
			return nil, &MalformedRecordError{Index: i, RegistrationNumber: r.RegistrationNumber, Semester: r.Semester}
		}
		rows[i] = keyed{key: GroupKey{Semester: semester, Branch: r.Branch}, record: r}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].key.Semester != rows[j].key.Semester {
			return rows[i].key.Semester < rows[j].key.Semester
		}
		return rows[i].key.Branch < rows[j].key.Branch
	})

	var groups []Group
	for _, row := range rows {
		if n := len(groups); n > 0 && groups[n-1].Key == row.key {
			groups[n-1].Records = append(groups[n-1].Records, row.record)
			continue
		}
		groups = append(groups, Group{Key: row.key, Records: []roster.Record{row.record}})
	}

	return groups, nil
}
