package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSheet() ResultSheet {
	return ResultSheet{
		Key:      SheetKey{Department: "CSE", Batch: Batch{2021, 2025}, Semester: 1},
		Subjects: []string{"Maths", "Physics"},
		Students: []StudentMarks{
			{RollNumber: "R1", StudentName: "Asha", Marks: []int{9, 8}},
			{RollNumber: "R2", StudentName: "Bala", Marks: []int{3, 7}},
			{RollNumber: "R3", StudentName: "Chen", Marks: []int{6, 2}},
			{RollNumber: "R4", StudentName: "Dev", Marks: []int{10, 0}},
		},
	}
}

func TestComputeSheetStats(t *testing.T) {
	s := ComputeSheetStats(sampleSheet(), DefaultPassMark)

	require.Equal(t, 4, s.Students)
	require.Len(t, s.Subjects, 2)

	maths := s.Subjects[0]
	require.Equal(t, "Maths", maths.Subject)
	require.Equal(t, 7.0, maths.AverageMarks) // 28/4
	require.Equal(t, 1, maths.FailCount)
	require.Equal(t, 4, maths.Appeared)
	require.Equal(t, 75.0, maths.PassPercentage)

	physics := s.Subjects[1]
	require.Equal(t, 4.25, physics.AverageMarks) // 17/4
	require.Equal(t, 2, physics.FailCount)
	require.Equal(t, 50.0, physics.PassPercentage)

	require.Equal(t, 62.5, s.AveragePassPercentage)
	require.Equal(t, 5.63, s.AverageMarks) // 45/8 = 5.625
	require.Equal(t, 1, s.ClearedAll)
}

func TestComputeSheetStats_Empty(t *testing.T) {
	s := ComputeSheetStats(ResultSheet{Subjects: []string{"A"}}, DefaultPassMark)
	require.Zero(t, s.AveragePassPercentage)
	require.Zero(t, s.Subjects[0].PassPercentage)
	require.Zero(t, s.AverageMarks)
}

func TestTopPerformers(t *testing.T) {
	sheet := sampleSheet()
	sheet.Students = append(sheet.Students, StudentMarks{RollNumber: "R0", StudentName: "Zed", Marks: []int{8, 9}})

	top := TopPerformers(sheet, 3)
	require.Len(t, top, 3)
	// R0 and R1 tie on 8.5; roll number breaks the tie.
	require.Equal(t, "R0", top[0].RollNumber)
	require.Equal(t, "R1", top[1].RollNumber)
	require.Equal(t, 8.5, top[1].AverageMarks)
	// R2 and R4 tie on 5.
	require.Equal(t, "R2", top[2].RollNumber)
}

func TestRollups(t *testing.T) {
	stats := []SheetStats{
		{Key: SheetKey{Department: "CSE", Semester: 1}, AveragePassPercentage: 60, AverageMarks: 6, ClearedAll: 3},
		{Key: SheetKey{Department: "CSE", Semester: 2}, AveragePassPercentage: 80, AverageMarks: 7, ClearedAll: 5},
		{Key: SheetKey{Department: "ECE", Semester: 1}, AveragePassPercentage: 90, AverageMarks: 8, ClearedAll: 2},
	}

	trends := SemesterTrends(stats)
	require.Equal(t, []SemesterTrend{
		{Semester: 1, AverageMarks: 7, AveragePassPercentage: 75, ClearedAll: 5},
		{Semester: 2, AverageMarks: 7, AveragePassPercentage: 80, ClearedAll: 5},
	}, trends)

	depts := DepartmentRollup(stats)
	require.Equal(t, []DepartmentPerformance{
		{Department: "CSE", AveragePassPercentage: 70, Sheets: 2},
		{Department: "ECE", AveragePassPercentage: 90, Sheets: 1},
	}, depts)
}

func TestPlacementPercentage(t *testing.T) {
	require.Equal(t, 66.67, PlacementInfo{TotalRegistered: 3, StudentsPlaced: 2}.Percentage())
	require.Equal(t, 0.0, PlacementInfo{}.Percentage())

	require.NoError(t, PlacementInfo{TotalRegistered: 10, StudentsPlaced: 10}.Validate())
	require.ErrorIs(t, PlacementInfo{TotalRegistered: 1, StudentsPlaced: 2}.Validate(), ErrInvalidPlacement)
	require.ErrorIs(t, PlacementInfo{CompaniesArrived: -1}.Validate(), ErrInvalidPlacement)
}
