// Package mail defines the outbound email boundary. The scheduler and
// services depend on the Mailer interface here; concrete transports live
// under internal/platform.
package mail
