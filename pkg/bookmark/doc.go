// Package bookmark encodes a set of bookmarked article identifiers into a
// compact signed token and verifies tokens back into sets.
//
// A token is two standard base64 segments joined by a dot:
//
//	base64(payload) + "." + base64(HMAC-SHA256(secret, payload))
//
// The payload is JSON of the form {"ids":[...],"iat":<unix seconds>}. The ids
// array is sorted and deduplicated on encode. The iat field is informational
// and never checked.
//
// # Usage
//
//	token, err := bookmark.Encode([]string{"a2", "a1"}, secret)
//	if err != nil {
//		// only bookmark.ErrNoSecret
//	}
//
//	ids, invalid, err := bookmark.Decode(token, secret)
//	if invalid {
//		// tampered, forged or garbage token: ids is empty
//	}
//
// Decode folds every failure of the token itself into the invalid flag. Use
// [Verify] to learn which check failed ([ErrMalformed], [ErrSignature] or
// [ErrPayload]).
//
// # Deterministic Output
//
// Inject a clock to make tokens reproducible in tests:
//
//	c := bookmark.New(bookmark.WithClock(func() time.Time { return fixed }))
//	token, _ := c.Encode(ids, secret)
package bookmark
