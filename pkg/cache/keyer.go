package cache

// Keyer builds cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// SolveKey keys a solve report by the hash of the maze text.
	SolveKey(mazeHash string, opts SolveKeyOpts) string

	// ArtifactKey keys a rendered artifact by the hash of its report.
	ArtifactKey(reportHash string, opts ArtifactKeyOpts) string
}

// SolveKeyOpts holds the search inputs that change a report.
type SolveKeyOpts struct {
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic,omitempty"`
}

// ArtifactKeyOpts holds the render inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format          string `json:"format"`
	CellSize        int    `json:"cell_size,omitempty"`
	Solution        bool   `json:"solution"`
	Explored        bool   `json:"explored,omitempty"`
	HeuristicLabels bool   `json:"heuristic_labels,omitempty"`
	Color           bool   `json:"color,omitempty"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolveKey returns "solve:<sha256>".
func (DefaultKeyer) SolveKey(mazeHash string, opts SolveKeyOpts) string {
	return hashKey(KeyTypeSolve, mazeHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(reportHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, reportHash, opts)
}

var _ Keyer = DefaultKeyer{}
