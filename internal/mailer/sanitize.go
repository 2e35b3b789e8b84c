package mailer

import (
	"net/mail"
	"strings"
)

var headerBreaks = strings.NewReplacer("\r", "", "\n", "")

// SanitizeHeader strips carriage returns and line feeds so a user-supplied
// value cannot start a new header line.
func SanitizeHeader(s string) string {
	return headerBreaks.Replace(s)
}

// ReplyTo formats the submitter as a Reply-To address. Both parts are
// sanitized first; net/mail then quotes or encodes the display name.
func ReplyTo(name, email string) string {
	addr := mail.Address{
		Name:    strings.TrimSpace(SanitizeHeader(name)),
		Address: SanitizeHeader(email),
	}
	return addr.String()
}
