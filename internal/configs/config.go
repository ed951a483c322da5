package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	"github.com/PolarWolf314/secretsanta/internal/utils"
)

const (
	// AppDirName is the directory under the user config dir holding config.toml.
	AppDirName = "secretsanta"

	// FileName is the configuration file name.
	FileName = "config.toml"

	// DefaultCSV is the participant file used when none is configured.
	DefaultCSV = "sample.csv"

	DefaultSMTPHost = "localhost"
	DefaultSMTPPort = 25
)

type Config struct {
	Sender SenderConfig `toml:"sender" json:"sender"`
	Input  InputConfig  `toml:"input" json:"input"`
	SMTP   SMTPConfig   `toml:"smtp" json:"smtp"`
	Audit  AuditConfig  `toml:"audit" json:"audit"`
}

type SenderConfig struct {
	// From is empty unless set by file, environment or flag; see EffectiveSender.
	From string `toml:"from,omitempty" json:"from" env:"SECRETSANTA_FROM"`
}

type InputConfig struct {
	CSV string `toml:"csv" json:"csv" env:"SECRETSANTA_CSV"`
}

type SMTPConfig struct {
	Host string `toml:"host" json:"host" env:"SECRETSANTA_SMTP_HOST"`
	Port int    `toml:"port" json:"port" env:"SECRETSANTA_SMTP_PORT"`
}

// AuditConfig names the JSON Lines file runs are recorded in. Empty disables
// recording.
type AuditConfig struct {
	Path string `toml:"path,omitempty" json:"path" env:"SECRETSANTA_AUDIT"`
}

// Source records where the effective configuration came from.
type Source struct {
	// Path is the config file consulted, whether or not it exists.
	Path string
	// FileFound is true when Path existed and was read.
	FileFound bool
	// UnknownKeys lists keys in the file that no setting uses.
	UnknownKeys []string
}

// Defaults returns the built-in configuration. The sender is left empty so
// the host name is only looked up when nothing else provides one.
func Defaults() Config {
	return Config{
		Input:  InputConfig{CSV: DefaultCSV},
		SMTP:   SMTPConfig{Host: DefaultSMTPHost, Port: DefaultSMTPPort},
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/secretsanta/config.toml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, AppDirName, FileName), nil
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (empty means DefaultPath), then environment variables. A missing file
// is not an error.
//
// envFiles are loaded into the environment first without overriding variables
// that are already set. With no envFiles, a .env in the working directory is
// used if present.
//
// Returns ErrInvalidConfig if the file or environment cannot be parsed or the
// result fails validation.
func Load(path string, envFiles ...string) (*Config, *Source, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	cfg := Defaults()
	src := &Source{Path: path}

	if _, err := os.Stat(path); err == nil {
		unknown, err := LoadTOML(path, &cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
		}
		src.FileFound = true
		src.UnknownKeys = unknown
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, nil, err
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, nil, fmt.Errorf("%w: environment: %v", kerrors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, src, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: .env: %v", kerrors.ErrInvalidConfig, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: env file: %v", kerrors.ErrInvalidConfig, err)
	}
	return nil
}

// EffectiveSender returns the configured sender, or donotreply@<fqdn> when
// none is set.
func (c Config) EffectiveSender() string {
	if c.Sender.From != "" {
		return c.Sender.From
	}
	return utils.DefaultSender()
}

// Validate checks the settings that cannot be fixed up later.
func (c Config) Validate() error {
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		return fmt.Errorf("%w: smtp port %d out of range", kerrors.ErrInvalidConfig, c.SMTP.Port)
	}
	if c.SMTP.Host == "" {
		return fmt.Errorf("%w: smtp host is empty", kerrors.ErrInvalidConfig)
	}
	return nil
}

// Save writes cfg to path. Returns ErrConfigExists if the file is already
// present and force is false.
func Save(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path)
		}
	}
	if err := SaveTOML(path, cfg); err != nil {
		return fmt.Errorf("saving config to %s: %w", path, err)
	}
	return nil
}
