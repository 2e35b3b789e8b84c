package model

import "time"

// HoneypotField is the hidden form input that humans leave empty.
const HoneypotField = "_gotcha"

// ContactForm carries the raw fields posted by the contact form.
type ContactForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Honeypot string `json:"_gotcha"`
}

// Submission is a contact form entry as persisted in contact_submissions.
// It is written once and never updated.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"` // nil when not provided
	Message     string    `json:"message"`
	IPAddress   *string   `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PhoneOr returns the phone number, or fallback when none was given.
func (s *Submission) PhoneOr(fallback string) string {
	if s.Phone == nil || *s.Phone == "" {
		return fallback
	}
	return *s.Phone
}

// IPAddressOr returns the origin address, or fallback when unknown.
func (s *Submission) IPAddressOr(fallback string) string {
	if s.IPAddress == nil || *s.IPAddress == "" {
		return fallback
	}
	return *s.IPAddress
}

// OptionalString maps "" to nil so empty optional columns are stored as NULL.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
