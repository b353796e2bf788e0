package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
db-query-timeout: 5s
db-max-conns: 10
db-min-conns: 2
http-port: "8000"
http-allowed-origins: ["http://localhost:3000"]
http-body-limit: 1M
http-rate-limit: 20
http-rate-burst: 40
access-token-ttl: 180m
token-issuer: hobbes
testing-mode: true
testing-users:
  - username: alice
    password-hash: "$2a$10$abcdefghijklmnopqrstuu"
    scopes: [read, write]
ldap-connect-timeout: 10s
ldap-receive-timeout: 45s
ldap-time-limit: 45
cache-socket-timeout: 3s
cache-operation-timeout: 1s
cache-ttl: 5m
tasks-queue: hobbes
tasks-workers: 2
tasks-max-retries: 3
tasks-countdown: 3s
tasks-retry-backoff: true
tasks-result-ttl: 24h
debug-mode: false
show-logs: false
trace-logs: false
logs-dir: /tmp/hobbes
smtp-host: localhost
smtp-port: 25
email-send-timeout: 10s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hobbes.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		c, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		Apply(c)

		assert.Equal(t, 180*time.Minute, Auth.AccessTokenTTL())
		assert.Equal(t, 3*time.Second, Tasks.Countdown())
		assert.Equal(t, 5*time.Second, DB.QueryTimeout())
		assert.Equal(t, 3, Tasks.MaxRetries)
		assert.True(t, Auth.TestingMode)
		require.Len(t, Auth.TestingUsers, 1)
		assert.Equal(t, []string{"read", "write"}, Auth.TestingUsers[0].Scopes)
	})

	t.Run("malformed duration", func(t *testing.T) {
		_, err := Load(writeConfig(t, strings.Replace(validConfig, "cache-ttl: 5m", "cache-ttl: five minutes", 1)))
		assert.Error(t, err)
	})

	t.Run("ldap is required outside of testing mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, strings.Replace(validConfig, "testing-mode: true", "testing-mode: false", 1)))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hobbes")
	t.Setenv("JWT_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("CACHE_URI", "localhost:6379")
	t.Setenv("CACHE_DB", "2")
	t.Setenv("MAILER_EMAIL", "hobbes@example.com")
	t.Setenv("MAILER_EMAIL_PASSWORD", "secret")

	s, err := LoadSecrets()
	require.NoError(t, err)
	assert.Equal(t, 2, s.CacheDB)
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), s.JWTKey)

	t.Setenv("CACHE_DB", "two")
	_, err = LoadSecrets()
	assert.Error(t, err)
}
