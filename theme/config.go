package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shelltk/animation"
	"github.com/npillmayer/shelltk/cssom/douceuradapter"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config describes a theme and its ambient settings, usually read from a
// YAML file:
//
//     stylesheets: [base.css, shell.css]
//     inline: |
//       .panel { opacity: 0.9; }
//     animation:
//       default-duration: 250ms
//       default-curve: ease-out
//     tracing:
//       shelltk.widget: debug
//
type Config struct {
	Stylesheets []string          `yaml:"stylesheets"`
	Inline      string            `yaml:"inline"`
	Animation   AnimationConfig   `yaml:"animation"`
	Tracing     map[string]string `yaml:"tracing"`

	dir string // stylesheet paths are relative to dir
}

// AnimationConfig holds defaults for animation declarations.
type AnimationConfig struct {
	DefaultDuration string `yaml:"default-duration"`
	DefaultCurve    string `yaml:"default-curve"`
}

// LoadConfig reads a YAML configuration. Relative stylesheet paths are
// resolved against the working directory.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("theme config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration from a file. Relative stylesheet
// paths are resolved against the directory of the file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// AnimationDefaults returns the spec used to complete animation
// declarations. Unset fields fall back to animation.DefaultSpec.
func (cfg *Config) AnimationDefaults() (animation.Spec, error) {
	spec := animation.DefaultSpec
	if d := strings.TrimSpace(cfg.Animation.DefaultDuration); d != "" {
		dur, err := time.ParseDuration(d)
		if err != nil || dur < 0 {
			return spec, fmt.Errorf("%w: default duration %q", animation.ErrSpec, d)
		}
		spec.Duration = dur
	}
	if name := strings.TrimSpace(cfg.Animation.DefaultCurve); name != "" {
		c, err := animation.CurveByName(name)
		if err != nil {
			return spec, fmt.Errorf("%w: default curve %q: %v", animation.ErrSpec, name, err)
		}
		spec.Curve, spec.CurveName = c, name
	}
	return spec, nil
}

// ApplyTracing sets the trace levels of the configured tracers. Unknown
// level names are reported and ignored.
func (cfg *Config) ApplyTracing() error {
	var errs error
	for key, lvl := range cfg.Tracing {
		level, ok := traceLevel(lvl)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("tracer %s: unknown trace level %q", key, lvl))
			continue
		}
		tracing.Select(key).SetTraceLevel(level)
	}
	return errs
}

func traceLevel(s string) (tracing.TraceLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return tracing.LevelDebug, true
	case "info":
		return tracing.LevelInfo, true
	case "error":
		return tracing.LevelError, true
	}
	return tracing.LevelError, false
}

// FromConfig creates a theme from a configuration. Stylesheets which cannot
// be read or parsed are skipped; the returned error collects all problems,
// while the theme holds everything that could be loaded.
func FromConfig(cfg *Config, factory animation.Factory) (*Sheet, error) {
	s := &Sheet{factory: factory, defaults: animation.DefaultSpec}
	spec, errs := cfg.AnimationDefaults()
	if errs == nil {
		s.defaults = spec
	}
	for _, name := range cfg.Stylesheets {
		path := name
		if !filepath.IsAbs(path) && cfg.dir != "" {
			path = filepath.Join(cfg.dir, path)
		}
		css, err := douceuradapter.ParseFile(path)
		if err != nil {
			tracer().Errorf("theme config: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		errs = multierr.Append(errs, s.AddStyleSheet(css))
	}
	if strings.TrimSpace(cfg.Inline) != "" {
		errs = multierr.Append(errs, s.Load("inline", cfg.Inline))
	}
	return s, errs
}

// Load parses CSS text and appends its rules to the theme.
func (s *Sheet) Load(name string, text string) error {
	css, err := douceuradapter.Parse(name, text)
	if err != nil {
		tracer().Errorf("stylesheet %s: %v", name, err)
		return err
	}
	return s.AddStyleSheet(css)
}
