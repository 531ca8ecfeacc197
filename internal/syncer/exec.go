package syncer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Execute copies each planned candidate in order. Parent directories
// are created as needed; content is written to a temp file and renamed
// into place, then mtime and permissions are copied from the source. A
// per-file failure is recorded and the batch continues: sync is a
// partial-failure operation, never all-or-nothing, and already-copied
// files are not rolled back.
//
// When dryRun is set, every candidate is reported as synced without
// touching the filesystem.
func Execute(candidates []Candidate, destRoot string, dryRun bool) *Result {
	result := &Result{}

	for _, c := range candidates {
		if dryRun {
			result.Synced = append(result.Synced, c)
			continue
		}

		if err := copyFile(c.SourcePath, c.DestPath, destRoot); err != nil {
			result.Errors = append(result.Errors, FileError{Path: c.SourcePath, Err: err})
			continue
		}
		result.Synced = append(result.Synced, c)
	}

	return result
}

// copyFile copies src to dest, preserving mode and mtime. The write is
// atomic: temp file in the destination directory, then rename.
func copyFile(src, dest, destRoot string) error {
	if err := ensureWithin(destRoot, dest); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating destination directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".obsidian-kit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return fmt.Errorf("copying content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", dest, err)
	}
	success = true

	// Preserve the source mtime so the next scan's tier-2 comparison
	// sees the pair as a tie, not as "source newer".
	if err := os.Chtimes(dest, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("preserving mtime on %s: %w", dest, err)
	}

	return nil
}

// ensureWithin rejects destination paths that escape the destination
// root after cleaning. Candidate relative paths come from the scanner,
// so this only trips on crafted input.
func ensureWithin(root, path string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving destination root: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving destination path: %w", err)
	}
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("destination %s is outside the destination root %s", path, root)
	}
	return nil
}
