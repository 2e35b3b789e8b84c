package mailer

import "time"

// Drivers accepted by MAIL_DRIVER.
const (
	DriverPostmark = "postmark"
	DriverDev      = "dev"
	DriverLog      = "log"
)

// Config holds outbound notification settings. Postmark tokens are only
// required when Driver is "postmark".
type Config struct {
	Driver               string        `env:"MAIL_DRIVER" envDefault:"log"`
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	OutputDir            string        `env:"MAIL_OUTPUT_DIR" envDefault:"./mail-output"`
	AdminEmail           string        `env:"ADMIN_EMAIL" envDefault:"info@sterlinglegal.com"`
	FromName             string        `env:"MAIL_FROM_NAME" envDefault:"Sterling Legal Website"`
	Subject              string        `env:"MAIL_SUBJECT" envDefault:"New Contact Form Submission - Sterling Legal Partners"`
	Timeout              time.Duration `env:"MAIL_TIMEOUT" envDefault:"5s"`
}
