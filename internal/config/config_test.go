package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "courtservice"
password = "secret"
dbname = "courtservice"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/courtservice.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "smc-courtservice"

[notifier]
enabled = false
url = ""
exchange = "courtservice.events"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Notifier.Enabled)

	assert.Equal(t,
		"host=localhost port=5432 user=courtservice password=secret dbname=courtservice sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mangled string
	}{
		{"zero port", "http_port = 8080"},
		{"no db host", `host = "localhost"`},
		{"no log level", `level = "info"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Вырезаем обязательное поле
			mangled := strings.Replace(validConfig, tt.mangled, "", 1)

			_, err := Load(writeConfig(t, mangled))
			assert.Error(t, err)
		})
	}
}
