package message

import (
	"encoding/json"
	"fmt"
)

// Response is an engine-agnostic HTTP response. The translator constructs
// it fresh for every exchange; the caller owns it after return. The body is
// fully buffered.
type Response struct {
	// Status is the HTTP status code.
	Status int
	// Proto is the protocol version the engine negotiated (e.g. "HTTP/1.1").
	Proto string
	// Header holds the response headers.
	Header *Header
	// Body is the buffered response body.
	Body []byte
}

// NewResponse returns a response with the given status and an empty header.
func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: NewHeader(),
	}
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsError reports whether the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.Status >= 400
}

// BodyString returns the body as a string.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// BodyJSON unmarshals the body into v.
func (r *Response) BodyJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("message: decode json body: %w", err)
	}
	return nil
}
