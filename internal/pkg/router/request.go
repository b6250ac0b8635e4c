package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/shandysiswandi/portfolio/internal/pkg/goerror"
)

// MaxBodyBytes caps how much of a request body DecodeBody reads.
const MaxBodyBytes = 1 << 20

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// DecodeBody decodes a JSON object body into dst.
//
// The body must hold exactly one JSON object; arrays, scalars, null, trailing
// data and type mismatches are rejected. Unknown keys are ignored and absent
// keys leave dst fields at their zero value.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil || len(raw) > MaxBodyBytes {
		return goerror.NewInvalidFormat()
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}
