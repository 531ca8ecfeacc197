// Package syncer implements one-way synchronization of markdown files
// from a source directory tree to a destination tree. Files are
// selected by a three-tier change check (existence, mtime, content
// hash) and copied preserving metadata; the destination is never
// pruned.
package syncer

// Reason records why a candidate was selected for sync.
type Reason int

const (
	// ReasonNone is the zero value; it never appears on a candidate.
	ReasonNone Reason = iota
	// ReasonNewFile: the destination file does not exist.
	ReasonNewFile
	// ReasonSourceNewer: the source mtime is ahead of the destination
	// beyond the detector tolerance.
	ReasonSourceNewer
	// ReasonContentChanged: mtimes tie within tolerance but content
	// hashes differ.
	ReasonContentChanged
)

// String returns a short human-readable label for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNewFile:
		return "new"
	case ReasonSourceNewer:
		return "modified"
	case ReasonContentChanged:
		return "content changed"
	default:
		return "unknown"
	}
}

// Candidate is a file selected for copying. RelPath is identical under
// both roots: the destination layout mirrors the source exactly.
type Candidate struct {
	SourcePath string
	DestPath   string
	RelPath    string
	Reason     Reason
}

// FileError associates a per-file sync failure with its source path.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of executing a sync plan. Errors are
// per-file and non-fatal: a failed copy never aborts the batch.
type Result struct {
	Synced []Candidate
	Errors []FileError
}
