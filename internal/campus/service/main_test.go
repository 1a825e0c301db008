package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "campus-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

var ctx = context.Background()

// today is the fixed date every test runs on.
var today = time.Date(2024, time.March, 11, 9, 30, 0, 0, time.UTC)

func fixedClock() Clock { return func() time.Time { return today } }

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

var (
	collegeAdmin = domain.Principal{UserID: "admin", Role: domain.RoleAdmin, AdminLevel: domain.AdminLevelCollege}
	cseAdmin     = domain.Principal{UserID: "cse-admin", Role: domain.RoleAdmin, Department: "CSE", AdminLevel: domain.AdminLevelDepartment}
	eceAdmin     = domain.Principal{UserID: "ece-admin", Role: domain.RoleAdmin, Department: "ECE", AdminLevel: domain.AdminLevelDepartment}
	cseFaculty   = domain.Principal{UserID: "cse-faculty", Role: domain.RoleFaculty, Department: "CSE"}
)

func requireInvalid(t *testing.T, err error, msg string) *ValidationError {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	if msg != "" {
		require.Contains(t, ve.Message, msg)
	}
	return ve
}

func services(t *testing.T) (*EventService, *AchievementService) {
	st := newTestStore(t)
	cat := catalog.Default()
	return &EventService{Store: st, Catalog: cat, Clock: fixedClock()},
		&AchievementService{Store: st, Catalog: cat}
}
