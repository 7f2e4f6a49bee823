// Package share builds outbound share links and hands URLs to the desktop.
package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/five82/aidfinder/internal/catalog"
)

const whatsAppBase = "https://wa.me/"

// MailtoURI returns a mailto: link whose subject is the program title and
// whose body is the description followed by the application link.
func MailtoURI(p catalog.Program, lang string) string {
	t := p.Translation(lang)
	body := t.Description + "\n\n" + p.Link
	return "mailto:?subject=" + escape(t.Title) + "&body=" + escape(body)
}

// WhatsAppURI returns a WhatsApp web-share link carrying the title,
// description and application link.
func WhatsAppURI(p catalog.Program, lang string) string {
	t := p.Translation(lang)
	text := t.Title + "\n\n" + t.Description + "\n\n" + p.Link
	return whatsAppBase + "?text=" + escape(text)
}

// escape percent-encodes s for a query value, using %20 for spaces because
// mail clients do not decode '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ValidateURL accepts absolute http, https and mailto URLs.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("program has no URL")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}
	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return "", fmt.Errorf("invalid URL host")
		}
	case "mailto":
	default:
		return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	return trimmed, nil
}

// Opener launches a URL in a new browsing context.
type Opener func(url string) error

// OpenURL validates raw and opens it with the platform browser command.
func OpenURL(raw string) error {
	target, err := ValidateURL(raw)
	if err != nil {
		return err
	}
	name, args := browserCommand(runtime.GOOS, target)
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

func browserCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Copier writes text to the system clipboard.
type Copier func(text string) error

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
