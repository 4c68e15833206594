// Package notify delivers out-of-band notifications to the site owner.
//
// Today that means one thing: an email for every contact-form submission,
// sent over SMTP with the visitor's address as Reply-To so the owner can
// answer directly. Delivery is best-effort and never blocks or fails the
// API request that triggered it.
package notify
