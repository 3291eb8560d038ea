package driven

import "context"

// ObjectStore is a cloud bucket or container.
// Keys are slash-separated object names relative to the bucket root.
type ObjectStore interface {
	// Upload copies a local file to key.
	Upload(ctx context.Context, localPath, key string) error

	// Download copies the object at key to a local file.
	Download(ctx context.Context, key, localPath string) error

	// List returns the keys that start with prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Location renders key as a provider URL (s3://, gs://, azure://).
	Location(key string) string
}
