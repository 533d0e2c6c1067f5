package share

// WhatsAppRequest builds a wa.me link. The phone number is optional: without
// one the link opens WhatsApp's contact picker instead of a chat.
type WhatsAppRequest struct {
	Phone    string `json:"phoneNumber" validate:"max=20"`
	ImageURL string `json:"imageUrl" validate:"required,max=2048"`
	Message  string `json:"message" validate:"max=1000"`
}

// WhatsAppResponse carries the click-to-chat link
type WhatsAppResponse struct {
	WaLink string `json:"waLink"`
	Phone  string `json:"phone"`
}

// EmailRequest sends a portrait to a recipient by email
type EmailRequest struct {
	Email      string `json:"email" validate:"required,email"`
	ImageURL   string `json:"imageUrl" validate:"required,max=2048"`
	ThemeName  string `json:"themeName" validate:"max=200"`
	Message    string `json:"message" validate:"max=1000"`
	SenderName string `json:"senderName" validate:"max=100"`
}

// LegacyRequest is the older combined share endpoint. The recipient rides
// in the "identifier" field: a phone number or email depending on channel.
type LegacyRequest struct {
	Channel   string `json:"channel" validate:"required"`
	Recipient string `json:"identifier" validate:"required,max=255"`
	ImageURL  string `json:"imageUrl" validate:"required,max=2048"`
	Message   string `json:"message" validate:"max=1000"`
}

// LegacyResponse mirrors the older endpoint's shape
type LegacyResponse struct {
	Channel string `json:"channel"`
	WaLink  string `json:"waLink,omitempty"`
	Sent    bool   `json:"sent"`
}
