// AngelaMos | 2026
// share.go

package referral

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
)

var Platforms = []Platform{
	PlatformWhatsApp,
	PlatformTelegram,
	PlatformFacebook,
	PlatformTwitter,
}

type CopyTarget string

const (
	CopyLink CopyTarget = "link"
	CopyCode CopyTarget = "code"
)

// Clipboard receives text the user asked to copy. Implementations are
// fire-and-forget from the caller's point of view.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Launcher opens an external share target for a prebuilt intent URL.
type Launcher interface {
	Launch(ctx context.Context, platform Platform, intentURL string) error
}

type Config struct {
	Code     string
	ShareURL string
	Message  string
}

type Sharer struct {
	code     string
	shareURL string
	message  string
}

func NewSharer(cfg Config) *Sharer {
	return &Sharer{
		code:     cfg.Code,
		shareURL: cfg.ShareURL,
		message:  cfg.Message,
	}
}

func (s *Sharer) Code() string {
	return s.code
}

// AppLink is the plain app URL shown in the share dialog.
func (s *Sharer) AppLink() string {
	return s.shareURL
}

// ReferralLink is the app URL tagged with the referral code.
func (s *Sharer) ReferralLink() string {
	return s.shareURL + "?ref=" + url.QueryEscape(s.code)
}

func (s *Sharer) CopyText(target CopyTarget) (string, error) {
	switch target {
	case CopyLink:
		return s.AppLink(), nil
	case CopyCode:
		return s.Code(), nil
	}
	return "", fmt.Errorf("copy target %q: %w", target, core.ErrInvalidInput)
}

// IntentURL builds the share URL for a platform. The referral link is passed
// raw where the platform expects a bare url parameter, matching what the
// platforms' share endpoints accept from the web client.
func (s *Sharer) IntentURL(platform Platform) (string, error) {
	link := s.ReferralLink()

	switch platform {
	case PlatformWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(s.message+" "+link), nil
	case PlatformTelegram:
		return "https://t.me/share/url?url=" + link +
			"&text=" + url.QueryEscape(s.message), nil
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + link, nil
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(s.message) +
			"&url=" + link, nil
	}
	return "", fmt.Errorf("share platform %q: %w", platform, core.ErrInvalidInput)
}

func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("share platform %q: %w", s, core.ErrInvalidInput)
}

func ParseCopyTarget(s string) (CopyTarget, error) {
	switch CopyTarget(s) {
	case CopyLink, CopyCode:
		return CopyTarget(s), nil
	}
	return "", fmt.Errorf("copy target %q: %w", s, core.ErrInvalidInput)
}

// LogClipboard records copies server side. The browser performs the actual
// clipboard write with the text returned to it.
type LogClipboard struct {
	Logger *slog.Logger
}

func (c LogClipboard) Copy(ctx context.Context, text string) error {
	c.logger().DebugContext(ctx, "referral text copied", "length", len(text))
	return nil
}

func (c LogClipboard) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// LogLauncher records share intents. The browser opens the returned URL.
type LogLauncher struct {
	Logger *slog.Logger
}

func (l LogLauncher) Launch(ctx context.Context, platform Platform, intentURL string) error {
	l.logger().InfoContext(ctx, "share intent launched",
		"platform", platform,
		"url", intentURL,
	)
	return nil
}

func (l LogLauncher) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
