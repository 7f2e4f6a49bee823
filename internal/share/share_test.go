package share

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/aidfinder/internal/catalog"
)

func snap() catalog.Program {
	return catalog.Program{
		Category: catalog.Food,
		Link:     "https://x/snap?a=1&b=2",
		Translations: map[string]catalog.Translation{
			"en": {Title: "SNAP (Food Stamps)", Description: "Monthly funds & more"},
			"fr": {Title: "SNAP (Bons alimentaires)", Description: "Fonds mensuels"},
		},
	}
}

func TestMailtoURI(t *testing.T) {
	got := MailtoURI(snap(), "en")
	if !strings.HasPrefix(got, "mailto:?subject=") {
		t.Fatalf("MailtoURI = %q, want mailto:?subject= prefix", got)
	}
	if strings.Contains(got, "+") {
		t.Fatalf("MailtoURI = %q, spaces must be %%20", got)
	}

	query, err := url.ParseQuery(strings.TrimPrefix(got, "mailto:?"))
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if query.Get("subject") != "SNAP (Food Stamps)" {
		t.Fatalf("subject = %q", query.Get("subject"))
	}
	wantBody := "Monthly funds & more\n\nhttps://x/snap?a=1&b=2"
	if query.Get("body") != wantBody {
		t.Fatalf("body = %q, want %q", query.Get("body"), wantBody)
	}
}

func TestWhatsAppURI(t *testing.T) {
	got := WhatsAppURI(snap(), "fr")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Host != "wa.me" {
		t.Fatalf("host = %q, want wa.me", u.Host)
	}
	want := "SNAP (Bons alimentaires)\n\nFonds mensuels\n\nhttps://x/snap?a=1&b=2"
	if text := u.Query().Get("text"); text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestWhatsAppURI_FallsBackToEnglish(t *testing.T) {
	u, err := url.Parse(WhatsAppURI(snap(), "es"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.HasPrefix(u.Query().Get("text"), "SNAP (Food Stamps)") {
		t.Fatalf("text = %q, want English fallback", u.Query().Get("text"))
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{"https://example.com/path", " http://example.com ", "mailto:?subject=x"}
	for _, raw := range valid {
		if _, err := ValidateURL(raw); err != nil {
			t.Errorf("ValidateURL(%q) returned error: %v", raw, err)
		}
	}

	invalid := map[string]string{
		"":                       "no URL",
		"ftp://example.com/path": "unsupported URL scheme",
		"https://":               "invalid URL host",
		"javascript:alert(1)":    "unsupported URL scheme",
	}
	for raw, want := range invalid {
		_, err := ValidateURL(raw)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("ValidateURL(%q) error = %v, want %q", raw, err, want)
		}
	}
}

func TestBrowserCommand(t *testing.T) {
	cases := []struct {
		goos string
		name string
		args []string
	}{
		{goos: "darwin", name: "open", args: []string{"https://example.com"}},
		{goos: "windows", name: "rundll32", args: []string{"url.dll,FileProtocolHandler", "https://example.com"}},
		{goos: "linux", name: "xdg-open", args: []string{"https://example.com"}},
	}
	for _, tc := range cases {
		gotName, gotArgs := browserCommand(tc.goos, "https://example.com")
		if gotName != tc.name || !reflect.DeepEqual(gotArgs, tc.args) {
			t.Fatalf("browserCommand(%q) = (%q, %v), want (%q, %v)", tc.goos, gotName, gotArgs, tc.name, tc.args)
		}
	}
}

func TestOpenURL_RejectsInvalidBeforeLaunching(t *testing.T) {
	if err := OpenURL("ftp://example.com"); err == nil {
		t.Fatal("OpenURL(ftp) should fail validation")
	}
}
