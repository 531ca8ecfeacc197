package obsidiankit

import (
	"github.com/raplab/obsidian-kit/internal/frontmatter"
	"github.com/raplab/obsidian-kit/internal/metadata"
	"github.com/raplab/obsidian-kit/internal/syncer"
)

// Type aliases re-export internal types as the public API. Users
// import "github.com/raplab/obsidian-kit/pkg/obsidiankit" and use
// obsidiankit.Metadata, obsidiankit.SyncResult, etc.

type Metadata = metadata.Metadata
type ValidationResult = frontmatter.Result
type SyncReason = syncer.Reason
type SyncCandidate = syncer.Candidate
type SyncResult = syncer.Result
type FileError = syncer.FileError

const (
	ReasonNewFile        = syncer.ReasonNewFile
	ReasonSourceNewer    = syncer.ReasonSourceNewer
	ReasonContentChanged = syncer.ReasonContentChanged
)
