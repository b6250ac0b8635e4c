package entity

// Submission is one sanitized contact form entry. It lives for a single
// request and is never stored.
type Submission struct {
	Name    string
	Email   string
	Message string
}
