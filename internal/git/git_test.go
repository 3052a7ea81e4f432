package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestInspectOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	status := Inspect(dir)

	if status.Branch != "" {
		t.Errorf("Branch = %q, want empty outside a repository", status.Branch)
	}
	if status.Modified == nil {
		t.Error("Modified map should never be nil")
	}
	if status.IsModified(filepath.Join(dir, "anything")) {
		t.Error("nothing should be modified outside a repository")
	}
}

func TestInspectMarksModifiedEntries(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	gitRun := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v: %s", args, err, out)
		}
	}
	gitRun("init", "-q")

	os.Mkdir(filepath.Join(dir, "sub"), 0755)
	os.WriteFile(filepath.Join(dir, "sub", "new.txt"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "top.txt"), []byte("y"), 0644)

	status := Inspect(dir)

	// Resolve symlinked temp dirs (macOS /var -> /private/var)
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if realDir != dir {
		t.Skip("temp dir is behind a symlink")
	}

	if !status.IsModified(filepath.Join(dir, "top.txt")) {
		t.Error("top.txt should be marked modified")
	}
	if !status.IsModified(filepath.Join(dir, "sub")) {
		t.Error("sub should be marked because it contains an untracked file")
	}
}
