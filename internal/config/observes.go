package config

import (
	"time"

	"github.com/spf13/viper"
)

// Observes groups error reporting and tracing settings.
type Observes struct {
	Sentry *Sentry `json:"sentry" yaml:"sentry"`
	Tracer *Tracer `json:"tracer" yaml:"tracer"`
}

// Sentry config struct
type Sentry struct {
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Environment string  `json:"environment" yaml:"environment"`
	Release     string  `json:"release" yaml:"release"`
	SampleRate  float64 `json:"sample_rate" yaml:"sample_rate"`
}

// Enabled reports whether a DSN is configured.
func (s *Sentry) Enabled() bool {
	return s != nil && s.Endpoint != ""
}

// Tracer config struct
type Tracer struct {
	Endpoint      string        `json:"endpoint" yaml:"endpoint"`
	SampleRate    float64       `json:"sample_rate" yaml:"sample_rate"`
	BatchTimeout  time.Duration `json:"batch_timeout" yaml:"batch_timeout"`
	ExportTimeout time.Duration `json:"export_timeout" yaml:"export_timeout"`
}

// Enabled reports whether an OTLP collector endpoint is configured.
func (t *Tracer) Enabled() bool {
	return t != nil && t.Endpoint != ""
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: &Sentry{
			Endpoint:    v.GetString("observes.sentry.endpoint"),
			Environment: getStringOrDefault(v, "observes.sentry.environment", v.GetString("run_mode")),
			Release:     v.GetString("observes.sentry.release"),
			SampleRate:  getFloat64OrDefault(v, "observes.sentry.sample_rate", 1.0),
		},
		Tracer: &Tracer{
			Endpoint:      v.GetString("observes.tracer.endpoint"),
			SampleRate:    getFloat64OrDefault(v, "observes.tracer.sample_rate", 1.0),
			BatchTimeout:  getDurationOrDefault(v, "observes.tracer.batch_timeout", 5*time.Second),
			ExportTimeout: getDurationOrDefault(v, "observes.tracer.export_timeout", 30*time.Second),
		},
	}
}
