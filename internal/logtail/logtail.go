package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"
)

// Read returns at most maxLines from the end of the file at path.
// A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded JSON log record.
type Entry struct {
	Time    string
	Level   zapcore.Level
	Logger  string
	Message string
	Fields  map[string]any
}

var reservedKeys = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true, "caller": true, "stacktrace": true,
}

// Parse decodes a JSON log line. Lines that are not JSON objects return
// ok=false.
func Parse(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	e := Entry{Fields: map[string]any{}}
	e.Time, _ = raw["ts"].(string)
	e.Logger, _ = raw["logger"].(string)
	e.Message, _ = raw["msg"].(string)
	if lvl, ok := raw["level"].(string); ok {
		if parsed, err := zapcore.ParseLevel(lvl); err == nil {
			e.Level = parsed
		}
	}
	for k, v := range raw {
		if !reservedKeys[k] {
			e.Fields[k] = v
		}
	}
	return e, true
}

// Filter keeps the lines whose level is at least minLevel. Lines that do not
// parse are kept so nothing written to the log is hidden.
func Filter(lines []string, minLevel zapcore.Level) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if e, ok := Parse(line); ok && e.Level < minLevel {
			continue
		}
		out = append(out, line)
	}
	return out
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	levelStyle = map[zapcore.Level]lipgloss.Style{
		zapcore.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		zapcore.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		zapcore.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		zapcore.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// FormatLine renders a JSON log line as "time LEVEL message key=value".
// Fields are sorted by key. Unparsable lines are returned unchanged.
func FormatLine(line string) string {
	e, ok := Parse(line)
	if !ok {
		return line
	}

	var b strings.Builder
	if e.Time != "" {
		b.WriteString(timeStyle.Render(e.Time))
		b.WriteString(" ")
	}
	level := strings.ToUpper(e.Level.String())
	if style, ok := levelStyle[e.Level]; ok {
		level = style.Render(level)
	}
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(fieldStyle.Render(k + "="))
		b.WriteString(fmt.Sprint(e.Fields[k]))
	}
	return b.String()
}

// FormatLines renders every line with FormatLine.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line)
	}
	return out
}
