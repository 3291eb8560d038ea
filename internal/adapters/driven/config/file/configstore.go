package file

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// AzureConnectionStringEnv is consulted when the settings file names the
// azure provider without a connection string.
const AzureConnectionStringEnv = "AZURE_STORAGE_CONNECTION_STRING"

// Format identifies a settings file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from the file extension. Anything that is
// not .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Ensure Loader implements the interface.
var _ driven.SettingsLoader = (*Loader)(nil)

// Loader reads settings files from disk.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a settings loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// Load parses the settings file at path.
// An empty path returns zero settings, which disables cloud sync.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	if path == "" {
		return &domain.Settings{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	settings, err := l.Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return settings, nil
}

// Parse decodes settings from raw bytes.
func (l *Loader) Parse(data []byte, format Format) (*domain.Settings, error) {
	var settings domain.Settings

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	case FormatYAML:
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: config format %q", domain.ErrUnsupportedType, format)
	}

	l.applyEnv(&settings)
	return &settings, nil
}

func (l *Loader) applyEnv(s *domain.Settings) {
	if s.Cloud.Provider == domain.CloudProviderAzure && s.Cloud.ConnectionString == "" && l.getenv != nil {
		s.Cloud.ConnectionString = l.getenv(AzureConnectionStringEnv)
	}
	s.Runs.DBDir = expandHome(s.Runs.DBDir)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
