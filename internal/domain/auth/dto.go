package auth

// SendOTPRequest asks for a login code on a channel
type SendOTPRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Channel    string `json:"channel" validate:"required,channel"`
}

// VerifyOTPRequest exchanges a code for a session token
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Code       string `json:"otp" validate:"required,len=6,numeric"`
}

// GoogleLoginRequest carries a Google ID token credential
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// SessionResponse is returned after a successful login
type SessionResponse struct {
	Token      string `json:"token"`
	Identifier string `json:"identifier"`
	Channel    string `json:"channel"`
	ExpiresIn  int64  `json:"expires_in"`
}

// MeResponse describes the authenticated caller
type MeResponse struct {
	Identifier string `json:"identifier"`
	Channel    string `json:"channel"`
}
