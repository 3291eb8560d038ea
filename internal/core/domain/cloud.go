package domain

import "strings"

// CloudProvider identifies an object-store backend.
type CloudProvider string

// Available cloud providers.
const (
	// CloudProviderAWS is Amazon S3.
	CloudProviderAWS CloudProvider = "aws"

	// CloudProviderGCP is Google Cloud Storage.
	CloudProviderGCP CloudProvider = "gcp"

	// CloudProviderAzure is Azure Blob Storage.
	CloudProviderAzure CloudProvider = "azure"
)

// IsValid returns true if the provider is recognised.
func (p CloudProvider) IsValid() bool {
	switch p {
	case CloudProviderAWS, CloudProviderGCP, CloudProviderAzure:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p CloudProvider) String() string {
	return string(p)
}

// Scheme returns the URL scheme used when printing object locations.
func (p CloudProvider) Scheme() string {
	switch p {
	case CloudProviderAWS:
		return "s3"
	case CloudProviderGCP:
		return "gs"
	case CloudProviderAzure:
		return "azure"
	default:
		return string(p)
	}
}

// CloudConfig holds the object-store settings for artifact sync.
type CloudConfig struct {
	// Provider selects the backend. Empty disables sync.
	Provider CloudProvider `yaml:"provider" toml:"provider"`

	// Bucket is the S3 or GCS bucket name.
	Bucket string `yaml:"bucket" toml:"bucket"`

	// Container is the Azure blob container name.
	Container string `yaml:"container" toml:"container"`

	// Prefix is prepended to every object key.
	Prefix string `yaml:"prefix" toml:"prefix"`

	// Region is the AWS region (optional, falls back to the SDK chain).
	Region string `yaml:"region" toml:"region"`

	// Endpoint overrides the service endpoint (S3-compatible stores, emulators).
	Endpoint string `yaml:"endpoint" toml:"endpoint"`

	// CredentialsFile is a GCP service account JSON file.
	CredentialsFile string `yaml:"credentials_file" toml:"credentials_file"`

	// ConnectionString is the Azure storage connection string.
	ConnectionString string `yaml:"connection_string" toml:"connection_string"`

	// RequestsPerSecond caps transfer calls. Zero uses the default.
	RequestsPerSecond float64 `yaml:"requests_per_second" toml:"requests_per_second"`

	// MaxRetries bounds retries of a failed transfer. Zero uses the default.
	MaxRetries int `yaml:"max_retries" toml:"max_retries"`
}

// IsConfigured returns true if a provider has been selected.
func (c *CloudConfig) IsConfigured() bool {
	return c != nil && c.Provider != ""
}

// BucketName returns the bucket or container, whichever the provider uses.
func (c *CloudConfig) BucketName() string {
	if c.Provider == CloudProviderAzure {
		return c.Container
	}
	return c.Bucket
}

// KeyFor joins the configured prefix, the artifact kind and a relative path
// into an object key. Empty segments are dropped.
func (c *CloudConfig) KeyFor(what string, rel ...string) string {
	parts := make([]string, 0, 2+len(rel))
	for _, p := range append([]string{c.Prefix, what}, rel...) {
		p = strings.Trim(p, "/")
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}
