package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// LoadOptions controls where presets are looked up.
type LoadOptions struct {
	ConfigFile string // Explicit preset path (--config). Overrides NXTGEN_CONFIG.
	WorkDir    string // Searched first for .nxtgen.yaml.
	HomeDir    string // Searched second.
}

// Preset is the resolved set of wizard defaults.
type Preset struct {
	Defaults models.ProjectConfig
	Source   string // Preset file used, empty when none was found.
}

// Loader reads presets through viper on an injected file system.
type Loader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys afero.Fs, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{fs: fsys, logger: logger}
}

// Load resolves the wizard defaults. Precedence, highest first: NXTGEN_*
// environment, preset file, built-in defaults. A missing preset file is not
// an error unless it was named explicitly.
func (l *Loader) Load(opts LoadOptions) (*Preset, error) {
	v := viper.New()
	v.SetFs(l.fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	explicit := opts.ConfigFile
	if explicit == "" {
		explicit = v.GetString(KeyConfig)
	}

	v.SetConfigType(ConfigType)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(ConfigName)
		for _, dir := range []string{opts.WorkDir, opts.HomeDir} {
			if dir != "" {
				v.AddConfigPath(dir)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			l.logger.Debug("no preset file found, using defaults")
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		default:
			return nil, fmt.Errorf("read preset: %w", err)
		}
	}

	var raw rawPreset
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defaults, err := raw.Validate()
	if err != nil {
		return nil, err
	}

	preset := &Preset{Defaults: defaults, Source: v.ConfigFileUsed()}
	if preset.Source != "" {
		l.logger.Debug("loaded preset", "path", preset.Source)
	}
	return preset, nil
}
