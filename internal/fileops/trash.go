package fileops

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// MoveToTrash moves a file or directory to the system trash/recycle bin
func MoveToTrash(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %s`, appleScriptQuote(path))
		cmd = exec.Command("osascript", "-e", script)

	case "windows":
		script := fmt.Sprintf(`Add-Type -AssemblyName Microsoft.VisualBasic; [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile(%s, 'OnlyErrorDialogs', 'SendToRecycleBin')`, powerShellQuote(path))
		cmd = exec.Command("powershell", "-Command", script)

	default:
		switch {
		case commandExists("gio"):
			cmd = exec.Command("gio", "trash", path)
		case commandExists("trash-put"):
			cmd = exec.Command("trash-put", path)
		default:
			return fmt.Errorf("trash command not available (install trash-cli or gvfs)")
		}
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, out)
	}
	return nil
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// powerShellQuote returns s as a single-quoted PowerShell literal. Inside
// single quotes only quote characters are special, and PowerShell accepts the
// typographic ones too; each is escaped by doubling.
func powerShellQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\u2018', '\u2019', '\u201a', '\u201b':
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// appleScriptQuote returns s as a double-quoted AppleScript string literal.
func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
