// Package prefs handles the persisted language and theme selection.
//
// On first run nothing is stored, so the language comes from the host locale
// when it is supported and the theme from the terminal background.
package prefs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/five82/aidfinder/internal/kv"
	"github.com/five82/aidfinder/internal/locale"
)

// Storage keys.
const (
	LanguageKey = "language"
	ThemeKey    = "theme"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Prefs holds the user's language and theme.
type Prefs struct {
	Language string
	Theme    string
}

// Host carries the environment signals used when nothing is stored.
// Empty fields mean the signal is unavailable.
type Host struct {
	Locale      string // POSIX locale such as "fr_FR.UTF-8"
	ColorScheme string // ThemeDark, ThemeLight or ""
}

// HostFromEnv reads LC_ALL, LC_MESSAGES and LANG in that order, and asks the
// terminal whether its background is dark.
func HostFromEnv() Host {
	var loc string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			loc = v
			break
		}
	}
	scheme := ThemeLight
	if lipgloss.HasDarkBackground() {
		scheme = ThemeDark
	}
	return Host{Locale: loc, ColorScheme: scheme}
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeLight || name == ThemeDark
}

// NextTheme returns the other theme.
func NextTheme(current string) string {
	if current == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Store owns the current preferences and writes every change through.
type Store struct {
	kv      kv.Store
	table   *locale.Table
	logger  *zap.Logger
	current Prefs
}

// New returns a store using the default language and light theme until Load
// runs.
func New(storage kv.Store, table *locale.Table, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:      storage,
		table:   table,
		logger:  logger,
		current: Prefs{Language: table.DefaultLanguage(), Theme: ThemeLight},
	}
}

// Load reads the stored preferences, deriving missing ones from host.
// Storage errors fall back to the derived values.
func (s *Store) Load(ctx context.Context, host Host) Prefs {
	lang := s.read(ctx, LanguageKey)
	if !s.table.Has(lang) {
		lang = s.DetectLanguage(host.Locale)
	}

	theme := s.read(ctx, ThemeKey)
	if !ValidTheme(theme) {
		theme = ThemeLight
		if host.ColorScheme == ThemeDark {
			theme = ThemeDark
		}
	}

	s.current = Prefs{Language: lang, Theme: theme}
	s.logger.Debug("preferences loaded",
		zap.String("language", lang),
		zap.String("theme", theme))
	return s.current
}

// DetectLanguage maps a POSIX or BCP 47 locale to a supported language code,
// falling back to the default language.
func (s *Store) DetectLanguage(hostLocale string) string {
	loc := hostLocale
	if idx := strings.IndexAny(loc, ".@"); idx != -1 {
		loc = loc[:idx]
	}
	loc = strings.ReplaceAll(strings.TrimSpace(loc), "_", "-")
	if loc == "" {
		return s.table.DefaultLanguage()
	}

	tag, err := language.Parse(loc)
	if err != nil {
		return s.table.DefaultLanguage()
	}
	base, _ := tag.Base()
	if code := base.String(); s.table.Has(code) {
		return code
	}
	return s.table.DefaultLanguage()
}

// Current returns the active preferences.
func (s *Store) Current() Prefs {
	return s.current
}

// SetLanguage switches and persists the language.
func (s *Store) SetLanguage(ctx context.Context, code string) error {
	if !s.table.Has(code) {
		return fmt.Errorf("unsupported language %q", code)
	}
	s.current.Language = code
	s.write(ctx, LanguageKey, code)
	return nil
}

// SetTheme switches and persists the theme.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.current.Theme = theme
	s.write(ctx, ThemeKey, theme)
	return nil
}

func (s *Store) read(ctx context.Context, key string) string {
	if s.kv == nil {
		return ""
	}
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("read preference failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func (s *Store) write(ctx context.Context, key, value string) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.Warn("persist preference failed", zap.String("key", key), zap.Error(err))
	}
}
