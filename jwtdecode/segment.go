package jwtdecode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// standardToURL maps the standard base64 alphabet onto the URL-safe one.
var standardToURL = strings.NewReplacer("+", "-", "/", "_")

// decodeSegment base64url-decodes a header or payload segment. Unpadded and
// correctly padded input are both accepted, as is the standard alphabet.
func decodeSegment(segment string) ([]byte, error) {
	if i := strings.IndexAny(segment, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}

	s := standardToURL.Replace(segment)
	if strings.HasSuffix(s, "=") {
		return base64.URLEncoding.DecodeString(s)
	}
	return base64.RawURLEncoding.DecodeString(s)
}

// validateJSON checks that b is UTF-8 encoded JSON whose top-level value is
// an object or an array.
func validateJSON(b []byte) error {
	if !utf8.Valid(b) {
		return errors.New("invalid UTF-8 in decoded segment")
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return errors.New("unexpected end of JSON input")
	}

	var v any
	err := json.Unmarshal(b, &v)
	if !gjson.ValidBytes(b) {
		if err != nil {
			return err
		}
		return errors.New("invalid JSON")
	}
	if err != nil {
		return err
	}

	switch v.(type) {
	case map[string]any, []any:
		return nil
	default:
		return fmt.Errorf("top-level value must be an object or array, got %s", jsonTypeName(v))
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	default:
		return "number"
	}
}
