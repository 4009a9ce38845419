// Package notifier is the email gateway. A Notifier delivers a single
// message; the Dispatcher formats domain events into messages, delivers them
// best-effort, and records the outcome. Delivery failures are logged and
// recorded, never propagated to the caller's request.
package notifier

import "log"

type Notifier interface {
	Send(recipient, subject, body string) error
}

// Disabled is the no-op sender used when MAIL_ENABLED is off. It reports
// success so callers behave identically to a live deployment.
type Disabled struct{}

func (Disabled) Send(recipient, subject, body string) error {
	log.Printf("Email sending disabled, would have sent %q to %s", subject, recipient)
	return nil
}
