// Package validation checks contact form input before anything is stored.
package validation

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sterlinglegal/backend/internal/model"
)

const (
	NameMinLength    = 2
	NameMaxLength    = 100
	EmailMaxLength   = 255
	PhoneMaxLength   = 30
	MessageMinLength = 10
	MessageMaxLength = 2000

	emailLocalMaxLength = 64
)

// Messages returned to the client. They are shown verbatim under the form.
const (
	MsgNameLength      = "Name must be between 2 and 100 characters"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgEmailTooLong    = "Email is too long"
	MsgPhoneTooLong    = "Phone number is too long"
	MsgMessageTooShort = "Message must be at least 10 characters"
	MsgMessageTooLong  = "Message must not exceed 2000 characters"

	MsgNameEncoding    = "Name contains invalid characters"
	MsgEmailEncoding   = "Email contains invalid characters"
	MsgPhoneEncoding   = "Phone number contains invalid characters"
	MsgMessageEncoding = "Message contains invalid characters"

	// MsgInvalidSubmission is the only answer a honeypot hit gets.
	MsgInvalidSubmission = "Invalid submission"
)

// ErrHoneypot is returned when the hidden anti-spam field was filled in.
var ErrHoneypot = errors.New("honeypot field filled")

// Errors lists violated rules in field order: name, email, phone, message.
type Errors []string

// Error joins the messages into the single sentence list sent to the client.
func (e Errors) Error() string {
	return strings.Join(e, ". ")
}

// CheckHoneypot rejects any non-empty honeypot value. A missing field and an
// empty one are treated alike.
func CheckHoneypot(value string) error {
	if value != "" {
		return ErrHoneypot
	}
	return nil
}

// Normalize trims surrounding whitespace from every user-visible field.
func Normalize(f model.ContactForm) model.ContactForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// Validate checks the four fields of f and returns nil when all rules pass.
// Lengths are counted in characters after trimming.
func Validate(f model.ContactForm) error {
	f = Normalize(f)

	var errs Errors

	// 不正な UTF-8 は長さより先に判定する
	switch n := utf8.RuneCountInString(f.Name); {
	case !utf8.ValidString(f.Name):
		errs = append(errs, MsgNameEncoding)
	case n < NameMinLength || n > NameMaxLength:
		errs = append(errs, MsgNameLength)
	}

	switch {
	case f.Email == "":
		errs = append(errs, MsgEmailRequired)
	case !utf8.ValidString(f.Email):
		errs = append(errs, MsgEmailEncoding)
	case !IsEmail(f.Email):
		errs = append(errs, MsgEmailInvalid)
	case utf8.RuneCountInString(f.Email) > EmailMaxLength:
		errs = append(errs, MsgEmailTooLong)
	}

	switch {
	case !utf8.ValidString(f.Phone):
		errs = append(errs, MsgPhoneEncoding)
	case utf8.RuneCountInString(f.Phone) > PhoneMaxLength:
		errs = append(errs, MsgPhoneTooLong)
	}

	switch n := utf8.RuneCountInString(f.Message); {
	case !utf8.ValidString(f.Message):
		errs = append(errs, MsgMessageEncoding)
	case n < MessageMinLength:
		errs = append(errs, MsgMessageTooShort)
	case n > MessageMaxLength:
		errs = append(errs, MsgMessageTooLong)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsEmail reports whether s is a bare RFC 5322 address (no display name)
// whose domain has at least one inner dot.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > emailLocalMaxLength {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
