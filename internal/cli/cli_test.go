package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/config"
	"MockAuthPortal/internal/logs"
	"MockAuthPortal/internal/server"
	"MockAuthPortal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	url         string
	sessionPath string
	out, errOut *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Defaults()
	cfg.RateLimitRPS = 0
	svc := auth.NewService(storage.NewMemoryUserStore(), auth.NewUserCodec("test-secret"), 0)
	srv := httptest.NewServer(server.NewRouter(cfg, svc))
	t.Cleanup(srv.Close)

	h := &harness{
		url:         srv.URL,
		sessionPath: filepath.Join(t.TempDir(), "nested", "session.json"),
		out:         &bytes.Buffer{},
		errOut:      &bytes.Buffer{},
	}
	logs.SetOutput(h.out, h.errOut)
	t.Cleanup(func() { logs.SetOutput(os.Stdout, os.Stderr) })
	return h
}

func (h *harness) run(args ...string) error {
	return h.runWithInput("", args...)
}

func (h *harness) runWithInput(input string, args ...string) error {
	h.out.Reset()
	h.errOut.Reset()
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(io.Discard)
	cmd.SetArgs(append([]string{"--server", h.url, "--session-file", h.sessionPath}, args...))
	return cmd.ExecuteContext(context.Background())
}

func TestSessionCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("whoami"))
	assert.Equal(t, "Not logged in\n", h.out.String())

	require.NoError(t, h.run("signup",
		"--name", "Gildong Hong",
		"--email", "gildong@example.com",
		"--password", "password123",
		"--confirm-password", "password123",
	))
	assert.Contains(t, h.out.String(), "Account created for gildong@example.com")
	assert.FileExists(t, h.sessionPath)

	require.NoError(t, h.run("login", "--email", "gildong@example.com", "--password", "x"))
	assert.Contains(t, h.out.String(), "Welcome, Gildong Hong!")

	require.NoError(t, h.run("whoami"))
	assert.Contains(t, h.out.String(), "Email: gildong@example.com")
	assert.Contains(t, h.out.String(), "ID:    1")

	require.NoError(t, h.run("logout"))
	assert.Equal(t, "Logged out\n", h.out.String())

	require.NoError(t, h.run("whoami"))
	assert.Equal(t, "Not logged in\n", h.out.String())
}

func TestLocalValidation(t *testing.T) {
	h := newHarness(t)

	err := h.run("signup", "--name", "Bob", "--email", "bad", "--password", "short", "--confirm-password", "other")
	require.ErrorIs(t, err, errInvalidInput)
	assert.Contains(t, h.errOut.String(), "name: Name must be at least 10 characters")
	assert.Contains(t, h.errOut.String(), "email: Please enter a valid email address")
	assert.Contains(t, h.errOut.String(), "confirmPassword: Passwords must match")
	assert.NoFileExists(t, h.sessionPath)
}

func TestServerErrorsSurface(t *testing.T) {
	h := newHarness(t)

	err := h.run("login", "--email", "nobody@example.com", "--password", "x")
	assert.EqualError(t, err, "User not found")
}

func TestPromptsForMissingValues(t *testing.T) {
	h := newHarness(t)
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func() ([]byte, error) { return []byte("password123"), nil }

	require.NoError(t, h.runWithInput("Younghee Kim\nyounghee@example.com\n", "signup"))
	assert.Contains(t, h.out.String(), "Account created for younghee@example.com")

	require.NoError(t, h.runWithInput("younghee@example.com\n", "login"))
	assert.Contains(t, h.out.String(), "Welcome, Younghee Kim!")
}
