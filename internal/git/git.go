package git

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Status is the git state of a directory as shown in the status bar.
type Status struct {
	Branch   string
	Modified map[string]bool // absolute paths with uncommitted changes
}

// IsModified reports whether path has uncommitted changes.
func (s Status) IsModified(path string) bool {
	return s.Modified[path]
}

// Inspect returns the git status of dir. Outside a repository, or without a
// git binary, it returns an empty Status.
func Inspect(dir string) Status {
	status := Status{Modified: make(map[string]bool)}

	top, err := run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return status
	}
	top = strings.TrimSpace(top)
	if branch, err := run(dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		status.Branch = strings.TrimSpace(branch)
	}

	output, err := run(dir, "status", "--porcelain")
	if err != nil {
		return status
	}
	for _, line := range strings.Split(output, "\n") {
		if len(line) <= 3 {
			continue
		}
		// porcelain paths are relative to the repository root
		name := strings.TrimSpace(line[3:])
		if i := strings.Index(name, " -> "); i >= 0 {
			name = name[i+4:]
		}
		full := filepath.Join(top, name)
		status.Modified[full] = true
		// mark the entry of dir that contains the change
		if rel, err := filepath.Rel(dir, full); err == nil && !strings.HasPrefix(rel, "..") {
			first := strings.SplitN(rel, string(filepath.Separator), 2)[0]
			status.Modified[filepath.Join(dir, first)] = true
		}
	}
	return status
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}
