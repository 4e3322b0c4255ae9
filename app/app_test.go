package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/auth"
)

const minimalConfig = `
[Webserver]
Port = 8080
URL = "http://localhost:8080"
SecretKey = "cookie-secret"

[DB]
GormEngine = "sqlite"
Name = "portfolio.db"

[Admin]
Password = "admin-secret"
`

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		dumpJSON = false
	})

	require.NoError(t, Execute())

	return out.String()
}

func TestHashPassword(t *testing.T) {
	out := strings.TrimSpace(run(t, "hash-password", "hunter2"))

	assert.True(t, auth.IsHash(out))
	require.NoError(t, auth.NewVerifier(out).Verify("hunter2"))
}

func TestConfigMasksSecrets(t *testing.T) {
	for _, env := range []string{"SECRET_KEY", "ADMIN_PASSWORD", "PORTFOLIO_CONFIG_JSON"} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(minimalConfig), 0o600))

	out := run(t, "config", "--config", dir+"/")
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "cookie-secret")
	assert.NotContains(t, out, "admin-secret")

	out = run(t, "config", "--json", "--config", dir+"/")
	assert.Contains(t, out, `"SecretKey": "********"`)
}
