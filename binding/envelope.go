package binding

import (
	"github.com/goccy/go-json"

	"github.com/mhlabs/mobilecore/jwtdecode"
)

// DecodeEnvelope is the JSON document returned to hosts that can only
// exchange strings. Exactly one of Token and Error is set.
type DecodeEnvelope struct {
	Token *jwtdecode.DecodedJWT `json:"token,omitempty"`
	Error *Status               `json:"error,omitempty"`
}

// DecodeJWTEnvelope decodes token and renders the outcome as a JSON
// DecodeEnvelope.
func (r *Registry) DecodeJWTEnvelope(token string) []byte {
	decoded, status := r.DecodeJWT(token)

	var env DecodeEnvelope
	if status.OK() {
		env.Token = &decoded
	} else {
		env.Error = &status
	}

	b, err := json.Marshal(env)
	if err != nil {
		fallback, _ := json.Marshal(DecodeEnvelope{Error: &Status{Code: CodeInternal, Kind: CodeInternal.String(), Message: err.Error()}})
		return fallback
	}
	return b
}
