package syncer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// hashChunkSize bounds memory use when hashing large files.
	hashChunkSize = 8192

	// DefaultTolerance absorbs filesystem mtime granularity and the
	// sub-second skew a copy can introduce. Without it, a copy followed
	// by an immediate rescan could false-positive as "source newer".
	DefaultTolerance = 1 * time.Second
)

// Detector decides whether a source file needs copying over its
// destination counterpart.
type Detector struct {
	Tolerance time.Duration
}

// NewDetector returns a Detector with the default mtime tolerance.
func NewDetector() *Detector {
	return &Detector{Tolerance: DefaultTolerance}
}

// ShouldSync applies the three-tier change check, in strict precedence:
//
//  1. Destination missing              -> (true, ReasonNewFile)
//  2. Source mtime ahead beyond tol    -> (true, ReasonSourceNewer)
//  3. Mtimes tie within tol, hash diff -> (true, ReasonContentChanged)
//
// A destination strictly newer than the source beyond tolerance is left
// alone. Hashing only runs in the tie case, so the expensive step is
// gated behind mtime ambiguity.
func (d *Detector) ShouldSync(sourcePath, destPath string) (bool, Reason, error) {
	destInfo, err := os.Stat(destPath)
	if os.IsNotExist(err) {
		return true, ReasonNewFile, nil
	}
	if err != nil {
		return false, ReasonNone, fmt.Errorf("stat %s: %w", destPath, err)
	}

	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false, ReasonNone, fmt.Errorf("stat %s: %w", sourcePath, err)
	}

	diff := srcInfo.ModTime().Sub(destInfo.ModTime())
	if diff > d.Tolerance {
		return true, ReasonSourceNewer, nil
	}

	if diff >= -d.Tolerance {
		srcHash, err := HashFile(sourcePath)
		if err != nil {
			return false, ReasonNone, err
		}
		destHash, err := HashFile(destPath)
		if err != nil {
			return false, ReasonNone, err
		}
		if srcHash != destHash {
			return true, ReasonContentChanged, nil
		}
	}

	return false, ReasonNone, nil
}

// HashFile computes the SHA-256 of a file, streamed in fixed-size
// chunks, and returns the hex digest.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
