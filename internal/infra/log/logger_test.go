package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"postboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscateEmail(t *testing.T) {
	tests := []struct {
		email   string
		visible int
		want    string
	}{
		{email: "test.mail@gmail.com", visible: 2, want: "te*******@gmail.com"},
		{email: "test.mail@gmail.com", visible: 0, want: "*********@gmail.com"},
		{email: "ab@x.io", visible: 5, want: "ab@x.io"},
		{email: "ab@x.io", visible: -1, want: "**@x.io"},
		{email: "not-an-email", visible: 2, want: "************"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ObfuscateEmail(tt.email, tt.visible))
		})
	}
}

func TestNewLogger_MasksEmailAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "info", EmailVisibleChars: 2})
	require.NoError(t, err)

	logger.Info("user registered", slog.String("email", "alice@example.com"), slog.Int64("user_id", 7))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "al***@example.com", record["email"])
	assert.EqualValues(t, 7, record["user_id"])
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "warn", Pretty: true})
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
