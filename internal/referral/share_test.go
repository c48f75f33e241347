// AngelaMos | 2026
// share_test.go

package referral

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

func newTestSharer() *Sharer {
	return NewSharer(Config{
		Code:     "FIT2024",
		ShareURL: "https://meu-corpo-app.vercel.app",
		Message:  "Treinos e nutrição",
	})
}

func TestReferralLink(t *testing.T) {
	s := newTestSharer()
	want := "https://meu-corpo-app.vercel.app?ref=FIT2024"
	if got := s.ReferralLink(); got != want {
		t.Errorf("ReferralLink() = %q, want %q", got, want)
	}
}

func TestIntentURL(t *testing.T) {
	s := newTestSharer()
	link := "https://meu-corpo-app.vercel.app?ref=FIT2024"

	tests := []struct {
		platform Platform
		prefix   string
		contains string
	}{
		{PlatformWhatsApp, "https://wa.me/?text=", "Treinos+e+nutri%C3%A7%C3%A3o+https%3A%2F%2Fmeu-corpo-app.vercel.app%3Fref%3DFIT2024"},
		{PlatformTelegram, "https://t.me/share/url?url=", "url=" + link + "&text=Treinos+e+nutri%C3%A7%C3%A3o"},
		{PlatformFacebook, "https://www.facebook.com/sharer/sharer.php?u=", "u=" + link},
		{PlatformTwitter, "https://twitter.com/intent/tweet?text=", "&url=" + link},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			got, err := s.IntentURL(tt.platform)
			if err != nil {
				t.Fatalf("IntentURL() error = %v", err)
			}
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("IntentURL() = %q, want prefix %q", got, tt.prefix)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("IntentURL() = %q, want to contain %q", got, tt.contains)
			}
		})
	}

	if _, err := s.IntentURL("myspace"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("IntentURL(myspace) error = %v, want ErrInvalidInput", err)
	}
}

func TestCopyText(t *testing.T) {
	s := newTestSharer()

	if got, _ := s.CopyText(CopyLink); got != "https://meu-corpo-app.vercel.app" {
		t.Errorf("CopyText(link) = %q", got)
	}
	if got, _ := s.CopyText(CopyCode); got != "FIT2024" {
		t.Errorf("CopyText(code) = %q", got)
	}
	if _, err := s.CopyText("qr"); err == nil {
		t.Error("CopyText(qr) should fail")
	}
}

func TestParsePlatform(t *testing.T) {
	for _, p := range Platforms {
		if got, err := ParsePlatform(string(p)); err != nil || got != p {
			t.Errorf("ParsePlatform(%q) = %v, %v", p, got, err)
		}
	}
	if _, err := ParsePlatform("WhatsApp"); err == nil {
		t.Error("ParsePlatform is case sensitive")
	}
}

func TestParseCopyTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    CopyTarget
		wantErr bool
	}{
		{"link", CopyLink, false},
		{"code", CopyCode, false},
		{"qr", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCopyTarget(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCopyTarget(%q) = %q, %v", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("ParseCopyTarget(%q) error = %v, want ErrInvalidInput", tt.in, err)
		}
	}
}

func TestLogCollaborators(t *testing.T) {
	ctx := context.Background()
	if err := (LogClipboard{}).Copy(ctx, "x"); err != nil {
		t.Errorf("LogClipboard.Copy() error = %v", err)
	}
	if err := (LogLauncher{}).Launch(ctx, PlatformTwitter, "https://x"); err != nil {
		t.Errorf("LogLauncher.Launch() error = %v", err)
	}
}
