package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runWithConfigFile(t *testing.T, body string) *Config {
	t.Helper()

	path := writeConfig(t, body)

	old := os.Args
	os.Args = []string{"jobtracker-server", "-c", path}
	t.Cleanup(func() { os.Args = old })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	return cfg
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestParseJson_Overlay(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		mutate func(c *Config)
	}{
		{
			name: "tokens and storage",
			body: `{"secret_key":"s3cr3t","access_token_validity_duration":"1m","refresh_token_validity_duration":"72h",
				"s3_bucket":"jt-exports","s3_region":"eu-central-1","s3_base_endpoint":"http://minio:9000/",
				"export_url_validity_duration":"5m"}`,
			mutate: func(c *Config) {
				c.SecretKey = "s3cr3t"
				c.AccessTokenValidityDuration = time.Minute
				c.RefreshTokenValidityDuration = 72 * time.Hour
				c.S3Bucket = "jt-exports"
				c.S3Region = "eu-central-1"
				c.S3BaseEndpoint = "http://minio:9000/"
				c.ExportURLValidityDuration = 5 * time.Minute
			},
		},
		{
			name: "endpoints, throttling and logging",
			body: `{"endpoint_addr_grpc":":6000","metrics_addr":":6001","database_dsn":"postgres://db/jt",
				"auth_rate_limit":0.5,"auth_rate_burst":2,"log_level":"debug","s3_root_user":"u","s3_root_password":"p"}`,
			mutate: func(c *Config) {
				c.EndpointAddrGRPC = ":6000"
				c.MetricsAddr = ":6001"
				c.DatabaseDSN = "postgres://db/jt"
				c.AuthRateLimit = 0.5
				c.AuthRateBurst = 2
				c.LogLevel = "debug"
				c.S3RootUser = "u"
				c.S3RootPassword = "p"
			},
		},
		{
			name:   "zero values keep defaults",
			body:   `{"secret_key":"","auth_rate_limit":0,"auth_rate_burst":0,"access_token_validity_duration":0}`,
			mutate: func(c *Config) {},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := runWithConfigFile(t, tc.body)

			want := defaults()
			tc.mutate(&want)
			if diff := cmp.Diff(&want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJson_WithoutFileFlag(t *testing.T) {
	old := os.Args
	os.Args = []string{"jobtracker-server", "-g", ":7000"}
	t.Cleanup(func() { os.Args = old })

	cfg := defaults()
	parseJson(&cfg)
	assert.Equal(t, defaults(), cfg)
}

func TestParseJson_BadInputPanics(t *testing.T) {
	assert.Panics(t, func() { runWithConfigFile(t, `{"secret_key":`) })
	assert.Panics(t, func() { runWithConfigFile(t, `{"access_token_validity_duration":"soon"}`) })
}
