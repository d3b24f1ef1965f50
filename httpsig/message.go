package httpsig

import "net/url"

// MessageBuilder is a fluent, error-accumulating way to construct a
// MessageSnapshot field by field, mirroring the teacher's higher-level
// request-builder convenience layered over its lower-level context type.
type MessageBuilder struct {
	snap *MessageSnapshot
	err  error
}

// NewMessageBuilder starts a new builder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{snap: NewMessageSnapshot()}
}

// Method sets the HTTP method.
func (b *MessageBuilder) Method(method string) *MessageBuilder {
	if b.err == nil {
		b.snap.SetMethod(method)
	}
	return b
}

// URL parses and sets the absolute target URI.
func (b *MessageBuilder) URL(rawURL string) *MessageBuilder {
	if b.err != nil {
		return b
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		b.err = newSigError(Generic, "invalid target URI %q: %v", rawURL, err)
		return b
	}
	b.snap.SetTargetURI(u)
	return b
}

// Status sets the response status code.
func (b *MessageBuilder) Status(status int) *MessageBuilder {
	if b.err == nil {
		b.snap.SetStatus(status)
	}
	return b
}

// Header appends a header value.
func (b *MessageBuilder) Header(name, value string) *MessageBuilder {
	if b.err == nil {
		b.snap.AddHeader(name, value)
	}
	return b
}

// Trailer appends a trailer value.
func (b *MessageBuilder) Trailer(name, value string) *MessageBuilder {
	if b.err == nil {
		b.snap.AddTrailer(name, value)
	}
	return b
}

// RelatedRequest attaches the request snapshot a response was produced
// from.
func (b *MessageBuilder) RelatedRequest(req *MessageSnapshot) *MessageBuilder {
	if b.err == nil {
		b.snap.SetRelatedRequest(req)
	}
	return b
}

// Build returns the constructed snapshot, or the first error encountered.
func (b *MessageBuilder) Build() (*MessageSnapshot, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.snap, nil
}
