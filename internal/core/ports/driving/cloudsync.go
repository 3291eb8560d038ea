package driving

import "context"

// Artifact kinds used as the second segment of object keys.
const (
	ArtifactData  = "data"
	ArtifactModel = "model"
)

// CloudSync copies artifacts to and from the configured object store.
// Sync is advisory: neither method reports failure to the caller.
type CloudSync interface {
	// MaybeUpload uploads a file or directory tree under the given artifact kind.
	MaybeUpload(ctx context.Context, localPath, what string)

	// MaybeDownload fetches every object of an artifact kind into localDir.
	MaybeDownload(ctx context.Context, what, localDir string)
}
