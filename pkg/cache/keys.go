package cache

// Keyer derives cache keys. Implementations must produce different keys for
// inputs that render differently.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Direction string `json:"direction"`
	Detailed  bool   `json:"detailed"`
}

// DefaultKeyer hashes the key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the DOT hash and options.
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}
