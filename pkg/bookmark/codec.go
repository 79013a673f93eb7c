package bookmark

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// separator joins the payload and signature segments of a token.
const separator = "."

// encoding is standard base64 with padding. Strict mode rejects non-zero
// trailing bits so that every altered character changes the decoded bytes.
var encoding = base64.StdEncoding.Strict()

// Payload is the signed content of a token.
type Payload struct {
	IDs      []string `json:"ids"`
	IssuedAt int64    `json:"iat"`
}

// wirePayload is the decode-side shape of Payload. Elements of ids are kept
// raw so a single non-string element drops out instead of failing the token.
type wirePayload struct {
	IDs      *[]json.RawMessage `json:"ids"`
	IssuedAt json.RawMessage    `json:"iat"`
}

// Codec converts bookmark sets to signed tokens and back.
// A Codec holds no secrets and is safe for concurrent use.
type Codec struct {
	now func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock sets the clock used for the issued-at stamp.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Codec with the given options.
func New(opts ...Option) *Codec {
	c := &Codec{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// Encode signs ids with secret using the wall clock. See [Codec.Encode].
func Encode(ids []string, secret string) (string, error) {
	return defaultCodec.Encode(ids, secret)
}

// Decode verifies token with secret. See [Codec.Decode].
func Decode(token, secret string) (Set, bool, error) {
	return defaultCodec.Decode(token, secret)
}

// Verify checks token with secret and returns its payload. See [Codec.Verify].
func Verify(token, secret string) (Payload, error) {
	return defaultCodec.Verify(token, secret)
}

// Encode builds a token for ids signed with secret.
// Identifiers are deduplicated and sorted, so equal sets always produce the
// same payload for the same issued-at second. Invalid UTF-8 is replaced with
// U+FFFD before deduplication.
// Returns ErrNoSecret if secret is empty.
func (c *Codec) Encode(ids []string, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	data, err := marshalPayload(Payload{
		IDs:      canonical(ids),
		IssuedAt: c.now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("bookmark: encode payload: %w", err)
	}

	// Format: base64(payload).base64(signature)
	return encoding.EncodeToString(data) + separator + encoding.EncodeToString(sign(data, secret)), nil
}

// Decode verifies token and returns the bookmarked identifiers.
//
// An empty token means no bookmarks yet and is not invalid. Any structural,
// signature or payload problem yields an empty set with invalid set to true;
// those are never reported as errors. The error is non-nil only for
// ErrNoSecret. The returned set is always non-nil and owned by the caller.
func (c *Codec) Decode(token, secret string) (ids Set, invalid bool, err error) {
	if secret == "" {
		return make(Set), false, ErrNoSecret
	}
	if token == "" {
		return make(Set), false, nil
	}

	p, err := c.Verify(token, secret)
	if err != nil {
		if errors.Is(err, ErrNoSecret) {
			return make(Set), false, err
		}
		return make(Set), true, nil
	}
	return NewSet(p.IDs...), false, nil
}

// Verify checks the token signature and parses its payload.
// Returns ErrMalformed, ErrSignature or ErrPayload (possibly wrapped) on failure.
// The issued-at stamp is reported but not checked.
func (c *Codec) Verify(token, secret string) (Payload, error) {
	if secret == "" {
		return Payload{}, ErrNoSecret
	}

	payloadB64, sigB64, ok := strings.Cut(token, separator)
	if !ok || payloadB64 == "" || sigB64 == "" {
		return Payload{}, ErrMalformed
	}

	data, err := encoding.DecodeString(payloadB64)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: payload segment: %v", ErrMalformed, err)
	}
	sig, err := encoding.DecodeString(sigB64)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: signature segment: %v", ErrMalformed, err)
	}

	if !hmac.Equal(sig, sign(data, secret)) {
		return Payload{}, ErrSignature
	}

	return unmarshalPayload(data)
}

// sign computes HMAC-SHA256 of data under secret.
func sign(data []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return mac.Sum(nil)
}

// canonical returns the sorted, deduplicated non-empty identifiers.
// Invalid UTF-8 sequences are replaced with U+FFFD first, which is what the
// JSON payload would carry anyway, so decoding returns exactly these strings.
func canonical(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if !utf8.ValidString(id) {
			id = strings.ToValidUTF8(id, string(utf8.RuneError))
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// marshalPayload serializes p as compact JSON with no HTML escaping and no
// trailing newline.
func marshalPayload(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// unmarshalPayload parses signed payload bytes.
// Non-string and empty elements of ids are dropped.
func unmarshalPayload(data []byte) (Payload, error) {
	var w wirePayload
	if err := json.Unmarshal(data, &w); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if w.IDs == nil {
		return Payload{}, fmt.Errorf("%w: ids missing", ErrPayload)
	}

	p := Payload{IDs: make([]string, 0, len(*w.IDs))}
	for _, raw := range *w.IDs {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil || id == "" {
			continue
		}
		p.IDs = append(p.IDs, id)
	}

	// iat is informational; an unexpected shape leaves it zero.
	if len(w.IssuedAt) > 0 {
		_ = json.Unmarshal(w.IssuedAt, &p.IssuedAt)
	}

	return p, nil
}
