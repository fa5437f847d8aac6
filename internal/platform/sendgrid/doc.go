// Package sendgrid implements the mail.Mailer interface over the
// SendGrid v3 REST API. The client speaks the mail/send wire format
// directly; only plain-text single-recipient messages are needed here.
package sendgrid
