package report

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UnknownYearLabel is printed in a section header when the semester maps to no year.
const UnknownYearLabel = "Unknown"

var errNotInteger = errors.New("not an integer")

// Year is the academic year derived from a semester. The zero value is indeterminate.
type Year struct {
	n int
}

// YearFor maps semesters 1-2, 3-4, 5-6 and 7-8 to years 1 through 4.
// Any other semester yields an indeterminate Year.
func YearFor(semester int) Year {
	if semester < 1 || semester > 8 {
		return Year{}
	}
	return Year{n: (semester + 1) / 2}
}

// YearForValue is YearFor for raw cell text. Unparseable text is indeterminate.
func YearForValue(v string) Year {
	semester, err := ParseSemester(v)
	if err != nil {
		return Year{}
	}
	return YearFor(semester)
}

// Value returns the year and whether it is known.
func (y Year) Value() (int, bool) {
	return y.n, y.n != 0
}

// Known reports whether the year could be determined.
func (y Year) Known() bool {
	return y.n != 0
}

// Label renders the year for a header, or UnknownYearLabel.
func (y Year) Label() string {
	if !y.Known() {
		return UnknownYearLabel
	}
	return strconv.Itoa(y.n)
}

// semesterPattern matches plain decimal integers, optionally written with a
// zero fraction as spreadsheets export them ("3", "+3", "3.0").
var semesterPattern = regexp.MustCompile(`^([+-]?[0-9]+)(?:\.0*)?$`)

// ParseSemester coerces a semester cell to an integer. Spreadsheet exports
// often store whole numbers as floats, so "3.0" is accepted as 3.
func ParseSemester(v string) (int, error) {
	m := semesterPattern.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, errNotInteger
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errNotInteger
	}
	return n, nil
}
