// Package cookie writes and reads HTTP cookies with shared defaults and
// optional HMAC-SHA256 signatures.
//
// Signed cookies bind a value to the server's secrets so clients cannot pick
// their own, which is how page sessions are issued:
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRETS")})
//	if err != nil {
//		return err
//	}
//	man.SetSigned(w, "orbit_session", uuid.NewString())
//
//	id, err := man.GetSigned(r, "orbit_session")
//
// Several secrets may be configured for rotation: the first signs, every one
// of them verifies.
package cookie
