package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	test := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarning},
		{"WARNING", LevelWarning},
		{" error ", LevelError},
	}
	for _, tt := range test {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	got, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, LevelInfo, got)
}

func TestSetLevelFromEnv(t *testing.T) {
	defer SetLevel(GetLevel())

	t.Setenv("GOPURLIN_TEST_LEVEL", "debug")
	SetLevelFromEnv("GOPURLIN_TEST_LEVEL", LevelError)
	assert.Equal(t, LevelDebug, GetLevel())

	t.Setenv("GOPURLIN_TEST_LEVEL", "nonsense")
	SetLevelFromEnv("GOPURLIN_TEST_LEVEL", LevelError)
	assert.Equal(t, LevelError, GetLevel())

	os.Unsetenv("GOPURLIN_TEST_LEVEL")
	SetLevelFromEnv("GOPURLIN_TEST_LEVEL", LevelWarning)
	assert.Equal(t, LevelWarning, GetLevel())
}

func TestSetupJSON(t *testing.T) {
	defer Setup(FormatText, os.Stderr)
	defer SetLevel(GetLevel())

	var buf bytes.Buffer
	Setup(FormatJSON, &buf)
	SetLevel(LevelInfo)

	Debug("hidden")
	Info("design checked", "table", "LLC", "row", 11)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "design checked", entry["msg"])
	assert.Equal(t, "LLC", entry["table"])
	assert.EqualValues(t, 11, entry["row"])
}

func TestCountStatus(t *testing.T) {
	before4xx := Total4xxErrors.Load()
	before5xx := Total5xxErrors.Load()
	before429 := Total429Errors.Load()

	CountStatus(200)
	CountStatus(404)
	CountStatus(429)
	CountStatus(500)

	assert.Equal(t, before4xx+2, Total4xxErrors.Load())
	assert.Equal(t, before5xx+1, Total5xxErrors.Load())
	assert.Equal(t, before429+1, Total429Errors.Load())
}
