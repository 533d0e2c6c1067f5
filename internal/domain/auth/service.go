package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/googleauth"
	"github.com/supermom/supermom-api/internal/pkg/jwt"
)

// OTPTTL is how long a login code stays valid
const OTPTTL = 10 * time.Minute

// OTPSender delivers a login code over one channel
type OTPSender interface {
	SendOTP(ctx context.Context, to, code string) error
}

// UserRecorder persists login identifiers
type UserRecorder interface {
	Upsert(ctx context.Context, identifier, channel string) error
}

// GoogleVerifier validates a Google ID token credential
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*googleauth.Profile, error)
}

// Service implements passwordless login
type Service struct {
	store       OTPStore
	mailSender  OTPSender
	smsSender   OTPSender
	jwtService  *jwt.Service
	users       UserRecorder
	google      GoogleVerifier
	development bool
}

// NewService creates auth service
func NewService(store OTPStore, mailSender, smsSender OTPSender, jwtService *jwt.Service, users UserRecorder, google GoogleVerifier, development bool) *Service {
	return &Service{
		store:       store,
		mailSender:  mailSender,
		smsSender:   smsSender,
		jwtService:  jwtService,
		users:       users,
		google:      google,
		development: development,
	}
}

// SendOTP generates a code, stores it, and delivers it on the requested
// channel. The code is returned only in development mode so local frontends
// can display it without a real mailbox.
func (s *Service) SendOTP(ctx context.Context, identifier, channel string) (devCode string, err error) {
	var sender OTPSender
	switch channel {
	case "email":
		sender = s.mailSender
	case "phone":
		sender = s.smsSender
	default:
		return "", ErrInvalidChannel
	}

	code := generateNumericCode(otpLength)
	if err := s.store.Set(ctx, identifier, code, OTPTTL); err != nil {
		return "", err
	}

	if err := sender.SendOTP(ctx, identifier, code); err != nil {
		log.Error().Err(err).
			Str("channel", channel).
			Msg("OTP delivery failed")
		if !s.development {
			return "", ErrDeliveryFailed
		}
	}

	log.Info().Str("channel", channel).Msg("OTP issued")

	if s.development {
		return code, nil
	}
	return "", nil
}

// VerifyOTP checks a code and issues a session token. A matching code is
// consumed; a wrong guess leaves it stored until it expires.
func (s *Service) VerifyOTP(ctx context.Context, identifier, code string) (*SessionResponse, error) {
	ok, err := s.store.Verify(ctx, identifier, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCode
	}

	return s.issueSession(ctx, identifier, "otp")
}

// GoogleLogin validates a Google ID token and issues a session token
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*SessionResponse, error) {
	profile, err := s.google.Verify(ctx, credential)
	if err != nil {
		log.Warn().Err(err).Msg("Google credential rejected")
		return nil, ErrInvalidGoogleJWT
	}

	return s.issueSession(ctx, profile.Email, "google")
}

func (s *Service) issueSession(ctx context.Context, identifier, channel string) (*SessionResponse, error) {
	if err := s.users.Upsert(ctx, identifier, channel); err != nil {
		// Login still succeeds when the user table write fails
		log.Error().Err(err).Msg("Failed to record user")
	}

	token, err := s.jwtService.GenerateSessionToken(identifier, channel)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{
		Token:      token,
		Identifier: identifier,
		Channel:    channel,
		ExpiresIn:  int64(s.jwtService.GetTTL().Seconds()),
	}, nil
}
