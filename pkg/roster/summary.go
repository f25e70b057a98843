package roster

import (
	"sort"
	"strconv"
	"strings"
)

// Count is one bucket of a distribution.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary mirrors the statistics shown before a document is generated.
type Summary struct {
	Total     int     `json:"total"`
	Branches  []Count `json:"branches"`
	Semesters []Count `json:"semesters"`
}

// Summarize counts records per branch (most frequent first) and per semester (ascending).
func Summarize(records []Record) Summary {
	branchCounts := make(map[string]int)
	semesterCounts := make(map[string]int)
	for _, r := range records {
		branchCounts[r.Branch]++
		semesterCounts[strings.TrimSpace(r.Semester)]++
	}

	branches := toCounts(branchCounts)
	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].Count != branches[j].Count {
			return branches[i].Count > branches[j].Count
		}
		return branches[i].Label < branches[j].Label
	})

	semesters := toCounts(semesterCounts)
	sort.SliceStable(semesters, func(i, j int) bool {
		a, errA := strconv.ParseFloat(semesters[i].Label, 64)
		b, errB := strconv.ParseFloat(semesters[j].Label, 64)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true // numeric semesters before garbage
		case errB == nil:
			return false
		}
		return semesters[i].Label < semesters[j].Label
	})

	return Summary{
		Total:     len(records),
		Branches:  branches,
		Semesters: semesters,
	}
}

func toCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n})
	}
	// map iteration is random; give the stable sorts a fixed starting order
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
