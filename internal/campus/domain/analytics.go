package domain

import (
	"math"
	"sort"
)

// DefaultPassMark is the lowest passing grade point.
const DefaultPassMark = 4

type SubjectStats struct {
	Subject        string
	AverageMarks   float64
	FailCount      int
	Appeared       int
	PassPercentage float64
}

type SheetStats struct {
	Key      SheetKey
	Subjects []SubjectStats

	// AveragePassPercentage is the mean of the subject pass percentages.
	AveragePassPercentage float64
	AverageMarks          float64
	ClearedAll            int
	Students              int
}

type Performer struct {
	RollNumber   string
	StudentName  string
	AverageMarks float64
}

type SemesterTrend struct {
	Semester              int
	AverageMarks          float64
	AveragePassPercentage float64
	ClearedAll            int
}

type DepartmentPerformance struct {
	Department            string
	AveragePassPercentage float64
	Sheets                int
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ComputeSheetStats aggregates a sheet. Marks below passMark fail.
func ComputeSheetStats(sheet ResultSheet, passMark int) SheetStats {
	stats := SheetStats{
		Key:      sheet.Key,
		Subjects: make([]SubjectStats, len(sheet.Subjects)),
		Students: len(sheet.Students),
	}

	var (
		passPctSum float64
		markSum    int
		markCount  int
	)
	for i, name := range sheet.Subjects {
		var sum, fails int
		for _, st := range sheet.Students {
			m := markAt(st, i)
			sum += m
			if m < passMark {
				fails++
			}
		}

		s := SubjectStats{Subject: name, FailCount: fails, Appeared: len(sheet.Students)}
		if s.Appeared > 0 {
			s.AverageMarks = Round2(float64(sum) / float64(s.Appeared))
			pct := float64(s.Appeared-fails) / float64(s.Appeared) * 100
			s.PassPercentage = Round2(pct)
			passPctSum += pct
		}
		stats.Subjects[i] = s
		markSum += sum
		markCount += s.Appeared
	}

	if len(sheet.Subjects) > 0 && len(sheet.Students) > 0 {
		stats.AveragePassPercentage = Round2(passPctSum / float64(len(sheet.Subjects)))
	}
	if markCount > 0 {
		stats.AverageMarks = Round2(float64(markSum) / float64(markCount))
	}

	for _, st := range sheet.Students {
		cleared := true
		for i := range sheet.Subjects {
			if markAt(st, i) < passMark {
				cleared = false
				break
			}
		}
		if cleared {
			stats.ClearedAll++
		}
	}
	return stats
}

// TopPerformers returns up to n students by average mark, highest first.
// Ties are broken by roll number.
func TopPerformers(sheet ResultSheet, n int) []Performer {
	out := make([]Performer, 0, len(sheet.Students))
	for _, st := range sheet.Students {
		var sum int
		for i := range sheet.Subjects {
			sum += markAt(st, i)
		}
		var avg float64
		if len(sheet.Subjects) > 0 {
			avg = float64(sum) / float64(len(sheet.Subjects))
		}
		out = append(out, Performer{
			RollNumber:   st.RollNumber,
			StudentName:  st.StudentName,
			AverageMarks: avg,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageMarks != out[j].AverageMarks {
			return out[i].AverageMarks > out[j].AverageMarks
		}
		return out[i].RollNumber < out[j].RollNumber
	})

	if len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].AverageMarks = Round2(out[i].AverageMarks)
	}
	return out
}

// SemesterTrends rolls sheet stats up per semester, ascending.
func SemesterTrends(stats []SheetStats) []SemesterTrend {
	type acc struct {
		marks, pass float64
		cleared, n  int
	}
	bySem := map[int]*acc{}
	for _, s := range stats {
		a, ok := bySem[s.Key.Semester]
		if !ok {
			a = &acc{}
			bySem[s.Key.Semester] = a
		}
		a.marks += s.AverageMarks
		a.pass += s.AveragePassPercentage
		a.cleared += s.ClearedAll
		a.n++
	}

	out := make([]SemesterTrend, 0, len(bySem))
	for sem, a := range bySem {
		out = append(out, SemesterTrend{
			Semester:              sem,
			AverageMarks:          Round2(a.marks / float64(a.n)),
			AveragePassPercentage: Round2(a.pass / float64(a.n)),
			ClearedAll:            a.cleared,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Semester < out[j].Semester })
	return out
}

// DepartmentRollup averages sheet pass percentages per department.
func DepartmentRollup(stats []SheetStats) []DepartmentPerformance {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, s := range stats {
		sums[s.Key.Department] += s.AveragePassPercentage
		counts[s.Key.Department]++
	}

	out := make([]DepartmentPerformance, 0, len(sums))
	for dept, sum := range sums {
		out = append(out, DepartmentPerformance{
			Department:            dept,
			AveragePassPercentage: Round2(sum / float64(counts[dept])),
			Sheets:                counts[dept],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

func markAt(st StudentMarks, i int) int {
	if i < len(st.Marks) {
		return st.Marks[i]
	}
	return 0
}
