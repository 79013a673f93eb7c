// Package cookie carries the signed bookmark token in and out of HTTP
// requests.
//
// It only moves strings: parsing a Cookie header, formatting Set-Cookie
// directives and marking responses as non-cacheable. Signing and verification
// live in the bookmark package.
//
// # Basic Usage
//
//	token, ok := cookie.Extract(r.Header.Get("Cookie"))
//
//	w.Header().Add("Set-Cookie", cookie.FormatSet(token))
//	w.Header().Add("Set-Cookie", cookie.FormatClear())
//	cookie.NoStore(w.Header())
//
// Directives always carry the same attributes in the same order:
//
//	edge_saved=<token>; Path=/; HttpOnly; Secure; SameSite=Lax; Max-Age=2592000
//	edge_saved=; Path=/; HttpOnly; Secure; SameSite=Lax; Max-Age=0
//
// # Manager
//
// A Manager binds a cookie name and lifetime and works on requests and
// responses directly:
//
//	m := cookie.New(
//		cookie.WithName("edge_saved"),
//		cookie.WithMaxAge(7*24*3600),
//	)
//	token, ok := m.Get(r)
//	m.Set(w, token)
//	m.Clear(w)
//
// Set and Clear append headers, so earlier Set-Cookie values survive.
//
// # Configuration
//
//   - [WithName]: Set the cookie name (default: "edge_saved")
//   - [WithMaxAge]: Set the lifetime in seconds (default: [DefaultMaxAge])
package cookie
