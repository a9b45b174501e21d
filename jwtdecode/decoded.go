package jwtdecode

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DecodedJWT holds the three segments of a decoded token. Header and
// Payload are JSON text; Signature is the third segment as it appeared in
// the token.
type DecodedJWT struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// Algorithm returns the "alg" header parameter, or "" when absent.
func (d DecodedJWT) Algorithm() string {
	return gjson.Get(d.Header, "alg").String()
}

// KeyID returns the "kid" header parameter, or "" when absent.
func (d DecodedJWT) KeyID() string {
	return gjson.Get(d.Header, "kid").String()
}

// HeaderField looks up a header value by gjson path. Non-string values are
// returned as their JSON text.
func (d DecodedJWT) HeaderField(path string) (string, bool) {
	return lookup(d.Header, path)
}

// Claim looks up a payload value by gjson path, e.g. "sub" or "roles.0".
// Non-string values are returned as their JSON text.
func (d DecodedJWT) Claim(path string) (string, bool) {
	return lookup(d.Payload, path)
}

// Pretty returns a copy with Header and Payload indented for display.
func (d DecodedJWT) Pretty() DecodedJWT {
	return DecodedJWT{
		Header:    string(pretty.Pretty([]byte(d.Header))),
		Payload:   string(pretty.Pretty([]byte(d.Payload))),
		Signature: d.Signature,
	}
}

func lookup(json, path string) (string, bool) {
	r := gjson.Get(json, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type == gjson.String {
		return r.Str, true
	}
	return r.Raw, true
}
