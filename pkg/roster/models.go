package roster

// Record is one participant row of an uploaded roster.
type Record struct {
	Name               string
	RegistrationNumber string
	Section            string
	Branch             string
	Semester           string // Raw cell value, e.g. "3" or "3.0"
	Date               string // Display format, e.g. "2024-01-15"
	From               string // "09:00", empty when absent
	To                 string // "17:00", empty when absent
}

// Column headers expected in a roster file
const (
	ColName               = "Name"
	ColRegistrationNumber = "Registration Number"
	ColSection            = "Section"
	ColBranch             = "Branch"
	ColSemester           = "Semester"
	ColDate               = "Date"
	ColFrom               = "From"
	ColTo                 = "To"
)

// baseColumns must always be present.
var baseColumns = []string{ColName, ColRegistrationNumber, ColSection, ColBranch, ColSemester}

// scheduleColumns may be replaced by a uniform Event.
var scheduleColumns = []string{ColDate, ColFrom, ColTo}

// AllColumns lists every roster column in file order.
func AllColumns() []string {
	cols := make([]string, 0, len(baseColumns)+len(scheduleColumns))
	cols = append(cols, baseColumns...)
	return append(cols, scheduleColumns...)
}
