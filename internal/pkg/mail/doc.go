// Package mail defines the contract for sending email messages and an SMTP
// implementation of it.
//
// Use cases depend on the Mail interface and the Message payload. SMTP opens
// one connection per Send, either straight into TLS (port 465) or upgraded
// with STARTTLS, authenticates with PLAIN and encodes headers and bodies so
// UTF-8 text survives 7-bit relays.
package mail
