package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSampler(t *testing.T) {
	tests := []struct {
		name    string
		sampler string
		arg     string
		wantErr bool
	}{
		{"always_on", SamplerAlwaysOn, "1.0", false},
		{"always_off ignores arg", SamplerAlwaysOff, "ignored", false},
		{"parent based ratio", SamplerParentBasedTraceIDRatio, "0.1", false},
		{"ratio bounds inclusive", SamplerTraceIDRatio, "0", false},
		{"unknown sampler", "sometimes", "0.1", true},
		{"ratio above one", SamplerTraceIDRatio, "1.5", true},
		{"negative ratio", SamplerTraceIDRatio, "-0.1", true},
		{"ratio not a number", SamplerParentBasedTraceIDRatio, "half", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSampler(tt.sampler, tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ServiceName:      "gallery-viewer",
			TracesEndpoint:   "http://localhost:4318/v1/traces",
			TracesSampler:    SamplerAlwaysOn,
			TracesSamplerArg: "1.0",
			MetricsEndpoint:  "http://localhost:4318/v1/metrics",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "exporters disabled", mutate: func(c *Config) {}},
		{name: "bad sampler ignored while traces are off", mutate: func(c *Config) { c.TracesSampler = "sometimes" }},
		{name: "both exporters", mutate: func(c *Config) { c.TracesEnabled, c.MetricsEnabled = true, true }},
		{name: "missing service name", mutate: func(c *Config) { c.ServiceName = "" }, wantErr: "service name"},
		{
			name:    "traces without endpoint",
			mutate:  func(c *Config) { c.TracesEnabled, c.TracesEndpoint = true, "" },
			wantErr: "traces endpoint",
		},
		{
			name:    "traces with bad sampler",
			mutate:  func(c *Config) { c.TracesEnabled, c.TracesSampler = true, "sometimes" },
			wantErr: "unknown sampler",
		},
		{
			name:    "metrics without endpoint",
			mutate:  func(c *Config) { c.MetricsEnabled, c.MetricsEndpoint = true, "" },
			wantErr: "metrics endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{
		"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER", "OTEL_TRACES_SAMPLER_ARG",
		"OTEL_TRACES_ENABLED", "OTEL_METRICS_ENABLED", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()

		assert.Equal(t, "gallery-viewer", cfg.ServiceName)
		assert.False(t, cfg.TracesEnabled)
		assert.False(t, cfg.MetricsEnabled)
		assert.Equal(t, SamplerAlwaysOn, cfg.TracesSampler)
		assert.Equal(t, "1.0", cfg.TracesSamplerArg)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("OTEL_SERVICE_NAME", "gallery-browse")
		t.Setenv("OTEL_TRACES_ENABLED", "yes")
		t.Setenv("OTEL_TRACES_SAMPLER", SamplerParentBasedTraceIDRatio)
		t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")
		t.Setenv("LOG_FORMAT", "console")

		cfg := LoadConfig()

		assert.Equal(t, "gallery-browse", cfg.ServiceName)
		assert.True(t, cfg.TracesEnabled)
		assert.Equal(t, SamplerParentBasedTraceIDRatio, cfg.TracesSampler)
		assert.Equal(t, "console", cfg.LogFormat)
		assert.NoError(t, cfg.Validate())
	})
}

func TestCreateSampler(t *testing.T) {
	for _, name := range []string{
		SamplerAlwaysOn, SamplerAlwaysOff, SamplerParentBasedAlwaysOn,
		SamplerParentBasedAlwaysOff, SamplerTraceIDRatio, SamplerParentBasedTraceIDRatio,
	} {
		t.Run(name, func(t *testing.T) {
			sampler, err := createSampler(Config{TracesSampler: name, TracesSamplerArg: "0.25"})
			require.NoError(t, err)
			assert.NotNil(t, sampler)
		})
	}

	_, err := createSampler(Config{TracesSampler: "bogus"})
	assert.Error(t, err)

	_, err = createSampler(Config{TracesSampler: SamplerTraceIDRatio, TracesSamplerArg: "lots"})
	assert.Error(t, err)
}
