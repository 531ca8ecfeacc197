package syncer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestScanSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.md"), "b", time.Time{})
	writeFile(t, filepath.Join(root, "a", "x.md"), "x", time.Time{})
	writeFile(t, filepath.Join(root, "a", "y.MD"), "y", time.Time{})
	writeFile(t, filepath.Join(root, "notes.txt"), "t", time.Time{})
	writeFile(t, filepath.Join(root, "z.markdown"), "z", time.Time{})

	got, err := Scan(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a", "x.md"),
		filepath.Join(root, "a", "y.MD"),
		filepath.Join(root, "b.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a", time.Time{})
	writeFile(t, filepath.Join(root, "b.markdown"), "b", time.Time{})

	got, err := Scan(root, []string{".md", ".markdown"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Scan = %v, want both files", got)
	}
}

func TestScanExcludesSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.md")
	writeFile(t, target, "real", time.Time{})

	link := filepath.Join(root, "link.md")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := Scan(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != target {
		t.Errorf("Scan = %v, want only %s", got, target)
	}
}

func TestPlanTiers(t *testing.T) {
	sourceDir := t.TempDir()
	destDir := t.TempDir()
	now := time.Now()

	// New file: no destination counterpart.
	writeFile(t, filepath.Join(sourceDir, "new.md"), "n", now)

	// Source newer.
	writeFile(t, filepath.Join(sourceDir, "newer.md"), "v2", now)
	writeFile(t, filepath.Join(destDir, "newer.md"), "v1", now.Add(-5*time.Second))

	// Tie with changed content.
	writeFile(t, filepath.Join(sourceDir, "changed.md"), "aaa", now)
	writeFile(t, filepath.Join(destDir, "changed.md"), "bbb", now)

	// Up to date.
	writeFile(t, filepath.Join(sourceDir, "same.md"), "same", now)
	writeFile(t, filepath.Join(destDir, "same.md"), "same", now)

	candidates, skipped, planErrs, err := Plan(sourceDir, destDir, nil, NewDetector())
	if err != nil {
		t.Fatal(err)
	}
	if len(planErrs) != 0 {
		t.Fatalf("plan errors: %v", planErrs)
	}

	reasons := map[string]Reason{}
	for _, c := range candidates {
		reasons[c.RelPath] = c.Reason
	}

	want := map[string]Reason{
		"new.md":     ReasonNewFile,
		"newer.md":   ReasonSourceNewer,
		"changed.md": ReasonContentChanged,
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}

	if len(skipped) != 1 || skipped[0] != "same.md" {
		t.Errorf("skipped = %v, want [same.md]", skipped)
	}

	// Candidates come out in scanner order.
	for i := 1; i < len(candidates); i++ {
		if candidates[i-1].RelPath > candidates[i].RelPath {
			t.Errorf("candidates out of order: %v", candidates)
		}
	}
}
