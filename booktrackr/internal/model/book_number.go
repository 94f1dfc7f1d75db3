package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// BookNumber is the position within a series. Stored as text, JSON numbers are accepted.
type BookNumber string

func (n *BookNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = BookNumber(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = BookNumber(num.String())
	return nil
}

// Int parses the leading integer, 0 when missing or unparsable.
func (n BookNumber) Int() int {
	return LeadingInt(string(n))
}

const maxLeadingInt = 1 << 31

// LeadingInt parses an optional sign and the leading run of digits of s.
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	v := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if v > maxLeadingInt/10 {
			break
		}
		v = v*10 + int(s[i]-'0')
	}
	if neg {
		return -v
	}
	return v
}
