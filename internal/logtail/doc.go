// Package logtail reads and formats AidFinder's JSON log file.
//
// # Overview
//
// The TUI owns the terminal, so zap writes to a file. This package backs the
// "aidfinder logs" command: it reads the last N lines of that file, drops
// entries below a chosen level and renders each JSON record as a single
// human-readable line.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so it scans the file once and
// holds only the lines it returns. A missing file yields no lines and no
// error; permission and I/O errors are returned wrapped.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Formatting
//
// FormatLine turns
//
//	{"level":"warn","ts":"2026-10-18T09:12:03.114Z","logger":"aidfinder","msg":"persist favorites failed","error":"disk full"}
//
// into
//
//	2026-10-18T09:12:03.114Z WARN persist favorites failed error=disk full
//
// Levels are colored with lipgloss when stdout is a terminal. Lines that are
// not JSON are passed through untouched.
package logtail
