package driven

import "github.com/custodia-labs/cleanhub/internal/core/domain"

// SettingsLoader reads pipeline settings from a file.
type SettingsLoader interface {
	// Load parses the file at path. An empty path returns zero settings.
	Load(path string) (*domain.Settings, error)
}
