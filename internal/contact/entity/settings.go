package entity

// Names of the settings that must be present before any email can be sent.
// They double as the environment variable names operators set.
const (
	SettingSender   = "EMAIL_SENDER"
	SettingPassword = "EMAIL_PASSWORD"
	SettingReceiver = "EMAIL_RECEIVER"
)

// Limits holds the maximum length, in characters, of each form field.
type Limits struct {
	Name    int
	Email   int
	Message int
}

// Settings is the contact configuration, read once at startup and never
// mutated afterwards.
type Settings struct {
	// Sender is the mailbox the site sends from; it also logs in to the relay.
	Sender string
	// Password is the relay credential for Sender.
	Password string
	// Receiver is the mailbox that gets the submissions.
	Receiver string
	// Limits bounds the submitted fields.
	Limits Limits
	// Version is reported by the health endpoint.
	Version string
}
