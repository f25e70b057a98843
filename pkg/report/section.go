package report

// DefaultDegreePrefix is printed before the branch in every course label.
const DefaultDegreePrefix = "B.Tech"

// DefaultSignatureRoles are printed, bold, under every section table.
var DefaultSignatureRoles = []string{"Event Coordinator", "Head Student Welfare", "HOD"}

const (
	// blankParagraphs separate a table from its signature line.
	blankParagraphs = 2
	signatureGap    = "\t\t\t"
)

// Labels holds the institution-specific text of a section.
type Labels struct {
	DegreePrefix   string
	SignatureRoles []string
}

// DefaultLabels returns the labels used when none are configured.
func DefaultLabels() Labels {
	return Labels{
		DegreePrefix:   DefaultDegreePrefix,
		SignatureRoles: append([]string(nil), DefaultSignatureRoles...),
	}
}

// Signature is the role line printed after a section table.
type Signature struct {
	Roles []string
	Gap   string
}

// Section is one (semester, branch) block of the report.
type Section struct {
	Key         GroupKey
	Year        Year
	CourseLabel string
	TermLabel   string
	Rows        []Row
	Layout      Layout
	Styles      Styles
	Signature   Signature
}

// BuildSection lays out and styles the table for g and attaches the signature line.
func BuildSection(g Group, labels Labels) Section {
	layout := LayoutGroup(g, labels)
	year := YearFor(g.Key.Semester)

	roles := labels.SignatureRoles
	if len(roles) == 0 {
		roles = DefaultSignatureRoles
	}

	return Section{
		Key:         g.Key,
		Year:        year,
		CourseLabel: CourseLabel(labels.DegreePrefix, g.Key.Branch),
		TermLabel:   TermLabel(year, g.Key.Semester),
		Rows:        DataRows(g),
		Layout:      layout,
		Styles:      ApplyStyle(layout),
		Signature: Signature{
			Roles: append([]string(nil), roles...),
			Gap:   signatureGap,
		},
	}
}
