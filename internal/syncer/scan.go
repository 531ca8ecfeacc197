package syncer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions is the markdown extension set scanned when no
// configuration overrides it.
var DefaultExtensions = []string{".md"}

// Scan recursively enumerates regular files under root whose extension
// (case-insensitive) is in exts, in lexicographic path order. Symbolic
// links are excluded entirely: neither followed, synced, nor reported.
func Scan(root string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if matchesExt(path, exts) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func matchesExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Plan scans sourceDir and decides, file by file, what needs copying
// into destDir. It returns the candidates in scanner order and the
// relative paths that were skipped as up to date. Files the detector
// cannot stat or hash are recorded as per-file errors and excluded;
// per the batch model, a detection failure on one file does not abort
// planning.
func Plan(sourceDir, destDir string, exts []string, det *Detector) ([]Candidate, []string, []FileError, error) {
	sources, err := Scan(sourceDir, exts)
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		candidates []Candidate
		skipped    []string
		errs       []FileError
	)

	for _, src := range sources {
		rel, relErr := filepath.Rel(sourceDir, src)
		if relErr != nil {
			errs = append(errs, FileError{Path: src, Err: relErr})
			continue
		}
		dest := filepath.Join(destDir, rel)

		need, reason, detErr := det.ShouldSync(src, dest)
		if detErr != nil {
			errs = append(errs, FileError{Path: src, Err: detErr})
			continue
		}

		if need {
			candidates = append(candidates, Candidate{
				SourcePath: src,
				DestPath:   dest,
				RelPath:    rel,
				Reason:     reason,
			})
		} else {
			skipped = append(skipped, rel)
		}
	}

	return candidates, skipped, errs, nil
}
