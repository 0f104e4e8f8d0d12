package dto

import (
	"encoding/json"
	"errors"
)

// Param is a raw request value. Form and query values arrive as text already;
// from a JSON body a string is unquoted and a bare number or boolean literal is
// kept verbatim, so "50.10" and 50.10 parse the same way and nothing passes
// through a float.
type Param string

func (p *Param) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Param(s)
	case '{', '[':
		return errors.New("expected a scalar value")
	default:
		*p = Param(b)
	}
	return nil
}

func optString(p *Param) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}
