package share

import (
	"context"
	"database/sql"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/email"
)

const defaultShareMessage = "I just turned my mom into a superhero! Check it out:"

var phoneJunk = regexp.MustCompile(`[\s()\-]`)

// NormalizePhone strips formatting and converts local Nigerian numbers
// (leading 0) to international form with the 234 country code
func NormalizePhone(phone string) (string, error) {
	p := phoneJunk.ReplaceAllString(phone, "")
	p = strings.TrimPrefix(p, "+")

	if strings.HasPrefix(p, "0") {
		p = "234" + p[1:]
	}

	if len(p) < 7 || len(p) > 15 {
		return "", ErrInvalidPhone
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return p, nil
}

// BuildWhatsAppLink returns a wa.me click-to-chat URL for the portrait
func BuildWhatsAppLink(phone, message, imageURL string) string {
	if message == "" {
		message = defaultShareMessage
	}
	text := message + "\n\nView Image: " + imageURL
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}

// Service handles outbound shares
type Service struct {
	mail *email.Service
	repo *Repository
}

// NewService creates share service. repo may be nil when the database is
// not configured.
func NewService(mail *email.Service, repo *Repository) *Service {
	return &Service{mail: mail, repo: repo}
}

// WhatsApp builds a share link and records the share. Without a phone
// number the link is number-less and the recipient is logged as "direct".
func (s *Service) WhatsApp(ctx context.Context, req WhatsAppRequest) (*WhatsAppResponse, error) {
	phone := ""
	recipient := "direct"
	if strings.TrimSpace(req.Phone) != "" {
		p, err := NormalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		phone = p
		recipient = p
	}

	link := BuildWhatsAppLink(phone, req.Message, req.ImageURL)
	s.record("whatsapp", recipient, req.ImageURL, link)

	return &WhatsAppResponse{WaLink: link, Phone: phone}, nil
}

// Email sends the portrait to a recipient and records the share
func (s *Service) Email(ctx context.Context, req EmailRequest) error {
	if err := s.mail.SendShare(ctx, req.Email, req.SenderName, req.ThemeName, req.Message, req.ImageURL); err != nil {
		log.Error().Err(err).Msg("Share email failed")
		return ErrSendFailed
	}

	s.record("email", req.Email, req.ImageURL, "")
	return nil
}

// Legacy handles the older combined share endpoint
func (s *Service) Legacy(ctx context.Context, req LegacyRequest) (*LegacyResponse, error) {
	switch req.Channel {
	case "whatsapp":
		resp, err := s.WhatsApp(ctx, WhatsAppRequest{
			Phone:    req.Recipient,
			ImageURL: req.ImageURL,
			Message:  req.Message,
		})
		if err != nil {
			return nil, err
		}
		return &LegacyResponse{Channel: "whatsapp", WaLink: resp.WaLink, Sent: true}, nil

	case "email":
		if err := s.mail.SendLegacyShare(ctx, req.Recipient, req.Message, req.ImageURL); err != nil {
			log.Error().Err(err).Msg("Share email failed")
			return nil, ErrSendFailed
		}
		s.record("email", req.Recipient, req.ImageURL, "")
		return &LegacyResponse{Channel: "email", Sent: true}, nil

	default:
		return nil, ErrInvalidChannel
	}
}

// ListRecent returns the newest shares
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Share, error) {
	if s.repo == nil {
		return []Share{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

// record writes the share row in the background; shares are best-effort
// analytics, never a failure the user sees
func (s *Service) record(channel, recipient, imageURL, link string) {
	if s.repo == nil {
		return
	}

	rec := &Share{
		ShareChannel: channel,
		Recipient:    nullString(recipient),
		ImageURL:     nullString(imageURL),
		ShareLink:    nullString(link),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.repo.Create(ctx, rec); err != nil {
			log.Error().Err(err).Str("channel", channel).Msg("Failed to record share")
		}
	}()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
