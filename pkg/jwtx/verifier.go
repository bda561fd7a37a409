package jwtx

import "errors"

// Verifier validates a token string and gives back the claims if it's legit.
//
// The two rejection reasons are deliberately distinguishable: ErrExpired means
// the signature checked out but the token is past its expiry; everything else
// (undecodable, structurally wrong, bad signature) is ErrMalformed. The HTTP
// layer maps them to different outcomes than a missing token, so the
// distinction must survive this boundary.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
)
