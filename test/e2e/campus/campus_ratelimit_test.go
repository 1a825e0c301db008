//go:build e2e

package campus_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

// TestLoginRateLimit runs with the default limits and expects the login
// endpoint to start refusing after its burst.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, map[string]string{
		"RATELIMIT_LOGIN_REQUESTS": "10",
		"RATELIMIT_LOGIN_BURST":    "10",
	})
	defer cleanup()

	client := campussdk.NewClient(baseURL)

	var limited bool
	for i := 0; i < 20; i++ {
		_, err := client.Login(t.Context(), "nobody@college.edu", "wrong-password")
		require.Error(t, err)
		if apiErr, ok := err.(*campussdk.APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, campussdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		assertAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredential)
	}
	require.True(t, limited, "login should be rate limited within 20 attempts")
}
