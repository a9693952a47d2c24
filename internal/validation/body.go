// Package validation holds the pure input checks that run before any
// persistence call: the request-body shape classifier shared by the PATCH and
// POST endpoints, and the article-listing query normalizer.
package validation

import (
	"github.com/imevanc/ncnews-backend/internal/apperr"
)

// Kind is the JSON primitive a schema field must decode to.
type Kind int

const (
	Number Kind = iota
	String
)

// Field is one required payload field and its expected kind.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the full set of required fields for a request body. A payload is
// accepted only if its keys are exactly the schema's fields with matching
// kinds.
type Schema []Field

// The two request-body schemas in the API.
var (
	VotePatch   = Schema{{Name: "inc_votes", Kind: Number}}
	CommentPost = Schema{{Name: "username", Kind: String}, {Name: "body", Kind: String}}
)

// Check classifies a decoded JSON object against the schema.
//
// Priority order is contractual: a payload with keys beyond the schema is
// Forbidden (403) even when every schema field is present and well typed.
// Only then is the payload rejected as BadRequest (400) for being empty,
// missing a field, or carrying a wrong-typed value. Extra and missing keys
// are found by set difference against the schema rather than by positional
// comparison, which gives the same verdicts without depending on key order.
//
// On acceptance the schema's fields are returned, extracted from the payload.
func (s Schema) Check(payload map[string]any) (map[string]any, error) {
	for key := range payload {
		if !s.allows(key) {
			return nil, apperr.Forbidden()
		}
	}
	if len(payload) == 0 {
		return nil, apperr.BadRequest()
	}

	fields := make(map[string]any, len(s))
	for _, f := range s {
		value, ok := payload[f.Name]
		if !ok {
			return nil, apperr.BadRequest()
		}
		if !f.Kind.matches(value) {
			return nil, apperr.BadRequest()
		}
		fields[f.Name] = value
	}
	return fields, nil
}

func (s Schema) allows(key string) bool {
	for _, f := range s {
		if f.Name == key {
			return true
		}
	}
	return false
}

// matches reports whether a decoded JSON value has the expected kind. JSON
// numbers decode to float64 via encoding/json.
func (k Kind) matches(value any) bool {
	switch k {
	case Number:
		_, ok := value.(float64)
		return ok
	case String:
		_, ok := value.(string)
		return ok
	}
	return false
}
