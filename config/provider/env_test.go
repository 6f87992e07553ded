package provider

import (
	"testing"

	"github.com/oddbit-project/visitordata/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envPrefix = "VDTEST_"

type envSection struct {
	Region             string `env:"REGION"`
	IDLength           int    `env:"ID_LENGTH"`
	MaxTimestampOffset int
	Enabled            bool
	Ratio              float64
	CamelCaseValue     string
	unexported         string
}

func setEnvVars(t *testing.T, vars map[string]string) {
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestEnvProvider_GetKey(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VDTEST_VISITOR_REGION":               "PT",
		"VDTEST_VISITOR_ID_LENGTH":            "16",
		"VDTEST_VISITOR_MAX_TIMESTAMP_OFFSET": "1000",
		"VDTEST_VISITOR_ENABLED":              "true",
		"VDTEST_VISITOR_RATIO":                "0.25",
		"VDTEST_VISITOR_CAMEL_CASE_VALUE":     "camel",
	})

	cfg := NewEnvProvider(envPrefix, true)
	dest := &envSection{IDLength: 11}
	require.NoError(t, cfg.GetKey("visitor", dest))

	assert.Equal(t, "PT", dest.Region)
	assert.Equal(t, 16, dest.IDLength)
	assert.Equal(t, 1000, dest.MaxTimestampOffset)
	assert.True(t, dest.Enabled)
	assert.Equal(t, 0.25, dest.Ratio)
	assert.Equal(t, "camel", dest.CamelCaseValue)
	assert.Empty(t, dest.unexported)
}

func TestEnvProvider_GetKeyPartial(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VDTEST_VISITOR_REGION": "BR",
	})

	cfg := NewEnvProvider(envPrefix, true)
	dest := &envSection{Region: "US", IDLength: 11, MaxTimestampOffset: 600000}
	require.NoError(t, cfg.GetKey("visitor", dest))

	// only existing variables overwrite fields
	assert.Equal(t, "BR", dest.Region)
	assert.Equal(t, 11, dest.IDLength)
	assert.Equal(t, 600000, dest.MaxTimestampOffset)
}

func TestEnvProvider_InvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"int", "VDTEST_VISITOR_ID_LENGTH", "abc"},
		{"bool", "VDTEST_VISITOR_ENABLED", "maybe"},
		{"float", "VDTEST_VISITOR_RATIO", "1,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := NewEnvProvider(envPrefix, true)
			err := cfg.GetKey("visitor", &envSection{})
			assert.ErrorIs(t, err, config.ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestEnvProvider_NoConversion(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VDTEST_visitor":        "raw",
		"VDTEST_VISITOR_REGION": "JP",
	})

	cfg := NewEnvProvider("VDTEST", false)
	v, err := cfg.GetStringKey("visitor")
	require.NoError(t, err)
	assert.Equal(t, "raw", v)

	dest := &envSection{}
	require.NoError(t, cfg.GetKey("visitor", dest))
	assert.Equal(t, "JP", dest.Region)
}

func TestEnvProvider_Get(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VDTEST_REGION": "DE",
	})

	cfg := NewEnvProvider(envPrefix, true)
	dest := &envSection{}
	require.NoError(t, cfg.Get(dest))
	assert.Equal(t, "DE", dest.Region)
}

func TestEnvProvider_Keys(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VDTEST_LOG_LEVEL": "debug",
	})

	cfg := NewEnvProvider(envPrefix, true)
	assert.True(t, cfg.KeyExists("logLevel"))
	assert.False(t, cfg.KeyExists("logFormat"))

	v, err := cfg.GetStringKey("logLevel")
	require.NoError(t, err)
	assert.Equal(t, "debug", v)

	_, err = cfg.GetStringKey("logFormat")
	assert.ErrorIs(t, err, config.ErrNoKey)
}

func TestEnvProvider_InvalidType(t *testing.T) {
	cfg := NewEnvProvider(envPrefix, true)

	var s string
	assert.ErrorIs(t, cfg.GetKey("visitor", &s), config.ErrInvalidType)
	assert.ErrorIs(t, cfg.GetKey("visitor", envSection{}), config.ErrInvalidType)
}
