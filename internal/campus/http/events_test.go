package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

func TestEvents(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	prof := s.faculty(t, "prof@college.edu", "CSE")

	hackathon, err := prof.CreateEvent(ctx, campussdk.CreateEventRequest{
		Name: "Hackathon", Type: "Technical", StartDate: "2024-03-10", EndDate: "2024-03-12",
		DynamicFields: map[string]any{"venue": "Main Hall"},
	})
	require.NoError(t, err)
	require.Equal(t, "CSE", hackathon.Department)
	require.Equal(t, "Ongoing", hackathon.Status)
	require.Equal(t, "Main Hall", hackathon.DynamicFields["venue"])

	_, err = prof.CreateEvent(ctx, campussdk.CreateEventRequest{Name: "Expo", StartDate: "2024-04-02", Department: "ECE"})
	require.NoError(t, err)

	_, err = prof.CreateEvent(ctx, campussdk.CreateEventRequest{Name: "Backwards", StartDate: "2024-04-02", EndDate: "2024-04-01"})
	requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)

	all, err := s.client.ListEvents(ctx, campussdk.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	cse, err := s.client.ListEvents(ctx, campussdk.EventFilter{Department: "cse"})
	require.NoError(t, err)
	require.Len(t, cse, 1)
	require.Equal(t, hackathon.ID, cse[0].ID)

	scheduled, err := s.client.ListEvents(ctx, campussdk.EventFilter{Status: "Scheduled"})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	require.Equal(t, "Expo", scheduled[0].Name)

	got, err := s.client.GetEvent(ctx, hackathon.ID)
	require.NoError(t, err)
	require.Equal(t, "Hackathon", got.Name)

	_, err = s.client.GetEvent(ctx, "01HZX3Y5Q8N6V7W2K4M9P0R1ST")
	apiErr := requireAPIError(t, err, http.StatusNotFound, campussdk.ErrorCodeNotFound)
	require.Equal(t, "Event not found", apiErr.Description)

	resp, body := s.do(t, http.MethodGet, "/api/events.ics?department=CSE", "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar"))
	require.Contains(t, body, "BEGIN:VCALENDAR")
	require.Contains(t, body, "Hackathon")
	require.NotContains(t, body, "Expo")
}

func TestAchievements(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	prof := s.faculty(t, "prof@college.edu", "ECE")

	a, err := prof.CreateAchievement(ctx, campussdk.CreateAchievementRequest{
		Name: "Team Falcon", Title: "Robotics winners", Date: "2024-02-20", Category: "Robotics", Type: "Student",
	})
	require.NoError(t, err)
	require.Equal(t, "ECE", a.Department)
	require.Equal(t, "student", a.Type)

	_, err = prof.CreateAchievement(ctx, campussdk.CreateAchievementRequest{
		Name: "Dr. Rao", Title: "Best paper", Date: "2024-01-05", Type: "faculty",
	})
	require.NoError(t, err)

	_, err = prof.CreateAchievement(ctx, campussdk.CreateAchievementRequest{Name: "X", Title: "Y", Date: "yesterday", Type: "student"})
	requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)

	students, err := s.client.ListAchievements(ctx, campussdk.AchievementFilter{Type: "student", Department: "ECE"})
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, a.ID, students[0].ID)

	got, err := s.client.GetAchievement(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Robotics winners", got.Title)

	_, err = s.client.GetAchievement(ctx, "01HZX3Y5Q8N6V7W2K4M9P0R1ST")
	requireAPIError(t, err, http.StatusNotFound, campussdk.ErrorCodeNotFound)

	resp, _ := s.do(t, http.MethodGet, "/api/achievements?department=NOPE", "", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
