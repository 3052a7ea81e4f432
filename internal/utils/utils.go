package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/dirman/internal/fileops"
)

var iconsByExt = map[string]string{
	".go":   "🐹",
	".py":   "🐍",
	".rs":   "🦀",
	".rb":   "💎",
	".java": "☕",
	".js":   "📜", ".ts": "📜", ".jsx": "📜", ".tsx": "📜",
	".c": "⚙️", ".cpp": "⚙️", ".h": "⚙️",
	".html": "🌐", ".htm": "🌐",
	".css": "🎨", ".scss": "🎨",
	".json": "📋", ".yaml": "📋", ".yml": "📋", ".toml": "📋",
	".md": "📝", ".markdown": "📝",
	".png": "🖼️", ".jpg": "🖼️", ".jpeg": "🖼️", ".gif": "🖼️", ".svg": "🖼️",
	".mp4": "🎬", ".mkv": "🎬", ".mov": "🎬",
	".mp3": "🎵", ".wav": "🎵", ".flac": "🎵",
	".zip": "📦", ".tar": "📦", ".gz": "📦", ".7z": "📦",
	".pdf": "📕",
	".sh":  "🖥️", ".bash": "🖥️", ".zsh": "🖥️",
}

// EntryIcon returns an icon for a listing entry. Directories and links get
// fixed icons, files are matched by extension.
func EntryIcon(name string, kind fileops.Kind) string {
	switch kind {
	case fileops.KindDirectory:
		return "📁"
	case fileops.KindSymlink:
		return "🔗"
	}
	if icon, ok := iconsByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return icon
	}
	return "📄"
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatFileSizeColored returns FormatFileSize styled by how large the file is
func FormatFileSizeColored(size int64) string {
	const (
		KB    = 1024
		MB    = 1024 * KB
		MB100 = 100 * MB
	)

	style := lipgloss.NewStyle()
	switch {
	case size < KB:
		style = style.Foreground(lipgloss.Color("240"))
	case size < MB:
		style = style.Foreground(lipgloss.Color("252"))
	case size < MB100:
		style = style.Foreground(lipgloss.Color("214")).Bold(true)
	default:
		style = style.Foreground(lipgloss.Color("196")).Bold(true)
	}
	return style.Render(FormatFileSize(size))
}

// IsHidden reports whether name is a dotfile.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
