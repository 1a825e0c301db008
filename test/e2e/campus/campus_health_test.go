//go:build e2e

package campus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

// TestHealthEndpoints verifies liveness, readiness and the department list on
// a fresh database.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, nil)
	defer cleanup()

	client := campussdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	depts, err := client.ListDepartments(t.Context())
	require.NoError(t, err)
	require.Len(t, depts, 6)
}
