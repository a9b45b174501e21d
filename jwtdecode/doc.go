/*
Package jwtdecode splits a compact-serialized JSON Web Token into its
header, payload and signature without verifying anything.

	parts, err := jwtdecode.Decode(token)
	if err != nil {
	    switch {
	    case errors.Is(err, jwtdecode.ErrInvalidFormat):
	        // not three dot-separated segments
	    case errors.Is(err, jwtdecode.ErrBase64):
	        // header or payload is not base64url
	    case errors.Is(err, jwtdecode.ErrJSON):
	        // header or payload is not a JSON object or array
	    }
	}

	fmt.Println(parts.Algorithm())
	sub, _ := parts.Claim("sub")

# Accepted Input

Segments may use the URL-safe alphabet (the JWT encoding) or the standard
one, padded or not. A token must contain exactly two dots. Empty segments
are not a format error: an empty header decodes to zero bytes and fails as
JSONError.

Signatures, expiry, audience and issuer are never checked, and encrypted
tokens (JWE) are not supported.

# Observability

A Decoder built with NewDecoder can report to a Logger, Metrics and Tracer
from the mobilecore package. The package-level Decode uses no-op sinks.
*/
package jwtdecode
