package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotel-gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimal = `
metadata:
  base_url: http://metadata.local
suppliers:
  - code: alpha
    base_url: http://alpha.local
    username: gateway
    password: secret
    timeout: 20s
    check_in_time: "15:00"
`

func TestLoadConfigFile_Defaults(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8082, cfg.Server.Port)
	assert.Equal(t, 23*time.Hour, cfg.Token.DefaultTTL)
	assert.Equal(t, 5*time.Minute, cfg.Token.SafetyMargin)
	assert.Equal(t, 1000, cfg.Enrichment.PageSize)
	assert.True(t, cfg.RoomDetail.FallbackEnabled)
	assert.Equal(t, "hotel-gateway.price.compare", cfg.Infrastructure.Kafka.Topics.PriceCompare)
	assert.False(t, cfg.Infrastructure.Kafka.Enabled())
	assert.False(t, cfg.Infrastructure.Redis.Enabled())
	assert.False(t, cfg.Infrastructure.Postgres.Enabled())

	require.Len(t, cfg.Suppliers, 1)
	alpha := cfg.Suppliers[0]
	assert.Equal(t, 20*time.Second, alpha.Timeout)
	assert.Equal(t, "15:00", alpha.CheckInTime)
	assert.Equal(t, []string{"alpha"}, cfg.SupplierCodes())
}

func TestLoadConfigFile_Infrastructure(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, minimal+`
infrastructure:
  redis:
    addrs: ["localhost:6379"]
  kafka:
    brokers: ["localhost:9092"]
    dial_timeout: 3s
  postgres:
    host: localhost
    user: gateway
    password: secret
    dbname: hotels
security:
  encryption:
    key: 0123456789abcdef0123456789abcdef
`))
	require.NoError(t, err)

	assert.True(t, cfg.Infrastructure.Redis.Enabled())
	assert.True(t, cfg.Infrastructure.Kafka.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Infrastructure.Kafka.DialTimeout)
	assert.Equal(t, "hotel-gateway", cfg.Infrastructure.Kafka.ClientID)
	assert.Equal(t, 5432, cfg.Infrastructure.Postgres.Port)
}

func TestLoadConfigFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{
			name:    "no suppliers",
			content: "metadata:\n  base_url: http://metadata.local\n",
			err:     "at least one supplier is required",
		},
		{
			name: "duplicate supplier",
			content: minimal + `  - code: alpha
    base_url: http://other.local
`,
			err: "supplier alpha: duplicate code",
		},
		{
			name: "missing base url",
			content: `metadata:
  base_url: http://metadata.local
suppliers:
  - code: beta
`,
			err: "supplier beta: base url is required",
		},
		{
			name: "postgres without key",
			content: minimal + `
infrastructure:
  postgres:
    host: localhost
    user: gateway
    password: secret
`,
			err: "encryption key of 32 bytes is required when credential overrides are stored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(writeConfig(t, tt.content))
			assert.EqualError(t, err, tt.err)
		})
	}
}
