package bookmark_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgesaved/pkg/bookmark"
)

const testSecret = "test-secret"

var fixedTime = time.Unix(1700000000, 0)

func fixedCodec() *bookmark.Codec {
	return bookmark.New(bookmark.WithClock(func() time.Time { return fixedTime }))
}

// signRaw builds a correctly signed token around an arbitrary payload.
func signRaw(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString([]byte(payload)) + "." +
		base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("produces canonical payload", func(t *testing.T) {
		t.Parallel()

		token, err := fixedCodec().Encode([]string{"a2", "a1", "a2"}, testSecret)
		require.NoError(t, err)

		payloadB64, _, ok := strings.Cut(token, ".")
		require.True(t, ok)
		payload, err := base64.StdEncoding.DecodeString(payloadB64)
		require.NoError(t, err)
		require.Equal(t, `{"ids":["a1","a2"],"iat":1700000000}`, string(payload))
	})

	t.Run("matches independently computed token", func(t *testing.T) {
		t.Parallel()

		token, err := fixedCodec().Encode([]string{"a3"}, testSecret)
		require.NoError(t, err)
		require.Equal(t, signRaw(`{"ids":["a3"],"iat":1700000000}`, testSecret), token)
	})

	t.Run("empty set encodes empty array", func(t *testing.T) {
		t.Parallel()

		token, err := fixedCodec().Encode(nil, testSecret)
		require.NoError(t, err)
		require.Equal(t, signRaw(`{"ids":[],"iat":1700000000}`, testSecret), token)
	})

	t.Run("equal sets give equal tokens", func(t *testing.T) {
		t.Parallel()

		c := fixedCodec()
		t1, err := c.Encode([]string{"a1", "a5", "a3"}, testSecret)
		require.NoError(t, err)
		t2, err := c.Encode([]string{"a3", "a1", "a5", "a1"}, testSecret)
		require.NoError(t, err)
		require.Equal(t, t1, t2)
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		t.Parallel()

		token, err := fixedCodec().Encode([]string{"<a&b>"}, testSecret)
		require.NoError(t, err)
		require.Equal(t, signRaw(`{"ids":["<a&b>"],"iat":1700000000}`, testSecret), token)
	})

	t.Run("empty secret fails", func(t *testing.T) {
		t.Parallel()

		_, err := bookmark.Encode([]string{"a1"}, "")
		require.ErrorIs(t, err, bookmark.ErrNoSecret)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		token, err := bookmark.Encode([]string{"a7", "a1", "a7"}, testSecret)
		require.NoError(t, err)

		ids, invalid, err := bookmark.Decode(token, testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.Equal(t, []string{"a1", "a7"}, ids.IDs())
	})

	t.Run("invalid utf-8 is stored as replacement characters", func(t *testing.T) {
		t.Parallel()

		c := fixedCodec()
		token, err := c.Encode([]string{"\xff", "a\x80b", "\xfe", "\uFFFD", "é"}, testSecret)
		require.NoError(t, err)

		ids, invalid, err := c.Decode(token, testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.Equal(t, []string{"a\uFFFDb", "é", "\uFFFD"}, ids.IDs())

		// Re-encoding the decoded set is stable.
		again, err := c.Encode(ids.IDs(), testSecret)
		require.NoError(t, err)
		require.Equal(t, token, again)
	})

	t.Run("round trip of empty set", func(t *testing.T) {
		t.Parallel()

		token, err := bookmark.Encode(nil, testSecret)
		require.NoError(t, err)

		ids, invalid, err := bookmark.Decode(token, testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.NotNil(t, ids)
		require.Zero(t, ids.Len())
	})

	t.Run("absent token is empty and valid", func(t *testing.T) {
		t.Parallel()

		ids, invalid, err := bookmark.Decode("", testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.NotNil(t, ids)
		require.Zero(t, ids.Len())
	})

	t.Run("empty secret fails", func(t *testing.T) {
		t.Parallel()

		_, invalid, err := bookmark.Decode("abc.def", "")
		require.ErrorIs(t, err, bookmark.ErrNoSecret)
		require.False(t, invalid)
	})

	t.Run("wrong secret is invalid", func(t *testing.T) {
		t.Parallel()

		token, err := bookmark.Encode([]string{"a1"}, testSecret)
		require.NoError(t, err)

		ids, invalid, err := bookmark.Decode(token, "other-secret")
		require.NoError(t, err)
		require.True(t, invalid)
		require.Zero(t, ids.Len())
	})

	t.Run("any single character change is invalid", func(t *testing.T) {
		t.Parallel()

		token, err := fixedCodec().Encode([]string{"a1", "a2", "a9"}, testSecret)
		require.NoError(t, err)

		for i := range len(token) {
			b := []byte(token)
			if b[i] == 'A' {
				b[i] = 'B'
			} else {
				b[i] = 'A'
			}

			ids, invalid, err := bookmark.Decode(string(b), testSecret)
			require.NoError(t, err)
			require.True(t, invalid, "position %d", i)
			require.Zero(t, ids.Len(), "position %d", i)
		}
	})

	t.Run("malformed tokens are invalid", func(t *testing.T) {
		t.Parallel()

		for _, token := range []string{
			"garbage",
			".",
			"abc.",
			".abc",
			"!!!.???",
			"a.b.c",
			"eyJpZHMiOltdfQ",
		} {
			ids, invalid, err := bookmark.Decode(token, testSecret)
			require.NoError(t, err, token)
			require.True(t, invalid, token)
			require.Zero(t, ids.Len(), token)
		}
	})

	t.Run("signed payload without ids array is invalid", func(t *testing.T) {
		t.Parallel()

		for _, payload := range []string{
			`{"ids":null,"iat":1}`,
			`{"iat":1}`,
			`{"ids":"a1","iat":1}`,
			`{"ids":{"a1":true}}`,
			`["a1"]`,
			`null`,
			`not json`,
			`{"ids":["a1"]} trailing`,
		} {
			ids, invalid, err := bookmark.Decode(signRaw(payload, testSecret), testSecret)
			require.NoError(t, err, payload)
			require.True(t, invalid, payload)
			require.Zero(t, ids.Len(), payload)
		}
	})

	t.Run("non-string and empty elements are dropped", func(t *testing.T) {
		t.Parallel()

		token := signRaw(`{"ids":["a1",2,null,"",{"x":1},["a4"],"a3","a1"],"iat":"yesterday"}`, testSecret)

		ids, invalid, err := bookmark.Decode(token, testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.Equal(t, []string{"a1", "a3"}, ids.IDs())
	})

	t.Run("missing iat is accepted", func(t *testing.T) {
		t.Parallel()

		ids, invalid, err := bookmark.Decode(signRaw(`{"ids":["a2"]}`, testSecret), testSecret)
		require.NoError(t, err)
		require.False(t, invalid)
		require.Equal(t, []string{"a2"}, ids.IDs())
	})

	t.Run("returned set is owned by caller", func(t *testing.T) {
		t.Parallel()

		token, err := bookmark.Encode([]string{"a1"}, testSecret)
		require.NoError(t, err)

		first, _, err := bookmark.Decode(token, testSecret)
		require.NoError(t, err)
		first.Toggle("a2")

		second, _, err := bookmark.Decode(token, testSecret)
		require.NoError(t, err)
		require.Equal(t, []string{"a1"}, second.IDs())
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	valid, err := fixedCodec().Encode([]string{"a1"}, testSecret)
	require.NoError(t, err)

	t.Run("returns payload", func(t *testing.T) {
		t.Parallel()

		p, err := bookmark.Verify(valid, testSecret)
		require.NoError(t, err)
		require.Equal(t, []string{"a1"}, p.IDs)
		require.Equal(t, fixedTime.Unix(), p.IssuedAt)
	})

	t.Run("reports failure kind", func(t *testing.T) {
		t.Parallel()

		_, err := bookmark.Verify("no-dot", testSecret)
		require.ErrorIs(t, err, bookmark.ErrMalformed)

		_, err = bookmark.Verify("***.***", testSecret)
		require.ErrorIs(t, err, bookmark.ErrMalformed)

		_, err = bookmark.Verify(valid, "wrong")
		require.ErrorIs(t, err, bookmark.ErrSignature)

		_, err = bookmark.Verify(signRaw(`{"iat":1}`, testSecret), testSecret)
		require.ErrorIs(t, err, bookmark.ErrPayload)

		_, err = bookmark.Verify(valid, "")
		require.ErrorIs(t, err, bookmark.ErrNoSecret)
	})
}
