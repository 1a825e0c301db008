//go:build e2e

package campus_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

/*
 * Common constants and helper functions for campus service end-to-end tests.
 * This includes container setup, account helpers and assertions.
 */

const (
	testImageName = "campus-test:latest"

	password = "Campus123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Campus Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Campus Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/campus/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupCampusContainer starts the service with relaxed rate limits and
// returns its base URL.
func setupCampusContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":        "test",
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
		"JWT_SECRET": "e2e-secret-that-is-at-least-32-bytes-long",
		// Seeds the college admin that collegeAdmin logs in as
		"BOOTSTRAP_ADMIN_EMAIL":    deanEmail,
		"BOOTSTRAP_ADMIN_PASSWORD": password,
		// Tests make many rapid requests which would otherwise hit the production limits
		"RATELIMIT_LOGIN_REQUESTS":  "1000",
		"RATELIMIT_LOGIN_BURST":     "1000",
		"RATELIMIT_UPLOAD_REQUESTS": "1000",
		"RATELIMIT_UPLOAD_BURST":    "1000",
		"RATELIMIT_WRITE_REQUESTS":  "1000",
		"RATELIMIT_WRITE_BURST":     "1000",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"5000/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("5000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signup registers req and logs the new account in.
func signup(t *testing.T, client *campussdk.Client, req campussdk.RegisterRequest) *campussdk.Session {
	t.Helper()
	ctx := context.Background()

	req.Password = password
	resp, err := client.Register(ctx, req)
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, resp.UserID)

	session, err := client.Login(ctx, req.Email, password)
	require.NoError(t, err, "Login should succeed")
	return session
}

const deanEmail = "dean@college.edu"

// collegeAdmin logs in as the admin seeded through BOOTSTRAP_ADMIN_*.
func collegeAdmin(t *testing.T, client *campussdk.Client) *campussdk.Session {
	t.Helper()
	session, err := client.Login(context.Background(), deanEmail, password)
	require.NoError(t, err, "bootstrapped admin should log in")
	return session
}

func faculty(t *testing.T, client *campussdk.Client, email, dept string) *campussdk.Session {
	return signup(t, client, campussdk.RegisterRequest{
		Username: "Prof", Email: email, Role: "faculty", Department: dept, FacultyID: "F-001", Position: "Professor",
	})
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *campussdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks the status and code of a failed call.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*campussdk.APIError)
	require.True(t, ok, "expected *campussdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
