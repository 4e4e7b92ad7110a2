package club_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marlinswim/clubgate/pkg/clubsdk"
)

/*
 * Common constants and helpers for clubgate end-to-end tests: container
 * lifecycle, bootstrap/login shortcuts, and invite token extraction.
 */

const (
	testImageName = "clubgate-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "admin@example.com"
	adminName      = "Ada Admin"
	adminPassword  = "Admin123!pass"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building clubgate Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up clubgate Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/clubgate/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// setupClubContainer starts the service and returns the base URL plus the
// container handle, which tests use to scrape invite tokens from the log
// mailer output.
func setupClubContainer(t *testing.T) (string, testcontainers.Container) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":    bootstrapToken,
			"CLUB_DATABASE_FILE": "/data/club.db",
			"CLUB_PEPPER_FILE":   "/data/pepper",
			"CLUB_ISSUER":        "clubgate-e2e",
			"CLUB_BASE_URL":      "https://club.example.com",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
			// Relaxed rate limits; tests make many rapid requests that would
			// otherwise trip the strict production defaults.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port()), container
}

// inviteTokenPattern matches the token query parameter of a registration link
// in the container log (the log mailer prints the full email body).
var inviteTokenPattern = regexp.MustCompile(`token=([0-9a-f]{64})`)

// latestInviteToken scrapes the newest invitation token for an email from the
// container logs. Without an SMTP relay the emailed link only exists there.
func latestInviteToken(t *testing.T, container testcontainers.Container, email string) string {
	t.Helper()
	ctx := context.Background()

	var token string
	require.Eventually(t, func() bool {
		reader, err := container.Logs(ctx)
		if err != nil {
			return false
		}
		defer reader.Close()

		logs, err := io.ReadAll(reader)
		if err != nil {
			return false
		}

		// The same email may have been re-invited or resent; the last match
		// wins because the log is append-only. The JSON log handler may
		// escape the ampersand in the link, so both encodings are accepted.
		emailPattern := regexp.MustCompile(
			`token=([0-9a-f]{64})(?:&|\\u0026)email=` + regexp.QuoteMeta(urlQueryEscape(email)))
		matches := emailPattern.FindAllStringSubmatch(string(logs), -1)
		if len(matches) == 0 {
			// Fall back to any token when the email encoding differs.
			m := inviteTokenPattern.FindAllStringSubmatch(string(logs), -1)
			if len(m) == 0 {
				return false
			}
			token = m[len(m)-1][1]
			return true
		}
		token = matches[len(matches)-1][1]
		return true
	}, 10*time.Second, 250*time.Millisecond, "invite token for %s should appear in logs", email)

	return token
}

func urlQueryEscape(email string) string {
	// Matches url.QueryEscape for the characters appearing in test emails.
	out := ""
	for _, r := range email {
		if r == '@' {
			out += "%40"
			continue
		}
		out += string(r)
	}
	return out
}

// bootstrapAdmin creates the first administrator and returns an authenticated
// session for it.
func bootstrapAdmin(t *testing.T, client *clubsdk.Client) *clubsdk.Session {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Bootstrap(ctx, bootstrapToken, adminEmail, adminName, adminPassword)
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, "admin", resp.User.Role)

	session, err := client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err, "Admin login should succeed")
	return session
}

// assertAPIError checks that err is an *clubsdk.APIError with the given
// status code.
func assertAPIError(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *clubsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s: unexpected status, got %s", context, apiErr)
}
