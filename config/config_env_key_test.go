package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"sqlitePath": "postboard.db",
			"postgres": map[string]any{
				"sslMode": "disable",
				"master":  map[string]any{"host": ""},
			},
		},
		"jwt": map[string]any{
			"secretKey":                 "",
			"accessTokenExpireMinutes":  30,
			"confirmTokenExpireMinutes": 60,
		},
		"mail": map[string]any{
			"strictMailerErrors": false,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_POSTGRES_SSLMODE", want: "database.postgres.sslMode"},
		{envKey: "DATABASE_POSTGRES_MASTER_HOST", want: "database.postgres.master.host"},
		{envKey: "DATABASE_SQLITEPATH", want: "database.sqlitePath"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "JWT_ACCESSTOKENEXPIREMINUTES", want: "jwt.accessTokenExpireMinutes"},
		{envKey: "MAIL_STRICTMAILERERRORS", want: "mail.strictMailerErrors"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FallsBackToSQLite(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Database)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "postboard.db", cfg.Database.SQLitePath)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.EqualValues(t, defaultMaxUploadBytes, cfg.Storage.MaxUploadBytes)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Mail)
	assert.False(t, cfg.Mail.StrictMailerErrors)
}

func TestApplyDefaults_PostgresWhenHostConfigured(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{Postgres: &postgres.DBConn{Master: postgres.ConnectionConfig{Host: "db.internal"}}}}
	cfg.HTTP.PublicURL = "https://postboard.example.com/"
	applyDefaults(cfg)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Empty(t, cfg.Database.SQLitePath)
	assert.Equal(t, "https://postboard.example.com", cfg.HTTP.PublicURL)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, postgres.ConnectionConfig{Host: "replica-0", Port: "5432", UserName: "reader"}, replicas[0])
}
