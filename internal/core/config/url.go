package config

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// URL is a value object holding an absolute URL. The zero value is "absent".
type URL struct {
	raw string
}

// ParseURL creates a URL from its string form. The input must be an absolute
// URL (scheme and host present); anything else is rejected with an error that
// names the offending input.
func ParseURL(s string) (URL, error) {
	parsed, err := url.Parse(s)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return URL{}, fmt.Errorf("malformed URL %q", s)
	}
	return URL{raw: parsed.String()}, nil
}

// MustParseURL is like ParseURL but panics on invalid input. Intended for
// constants and tests.
func MustParseURL(s string) URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}

// IsZero reports whether the URL is absent.
func (u URL) IsZero() bool {
	return u.raw == ""
}

// String implements the Stringer interface.
func (u URL) String() string {
	return u.raw
}

// MarshalJSON encodes the URL as its string form.
func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.raw)
}

// UnmarshalJSON decodes the URL from a JSON string, rejecting anything that
// is not a well-formed absolute URL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("URL must be a string: %w", err)
	}
	parsed, err := ParseURL(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
