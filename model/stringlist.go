package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Delimiter of the legacy column format, chosen so it never collides with URLs.
const legacyDelimiter = "|||"

// StringList stores an ordered list of strings in a single text column.
// New values are written as a JSON array; the pipe-delimited legacy format
// is still accepted on read. Codec failures degrade silently (NULL on
// write, legacy fallback or empty list on read) instead of failing the row.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, nil
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var data string
	switch v := src.(type) {
	case string:
		data = v
	case []byte:
		data = string(v)
	}

	data = strings.TrimSpace(data)
	if data == "" {
		*l = StringList{}
		return nil
	}

	if strings.HasPrefix(data, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(data), &parsed); err == nil {
			*l = parsed
			return nil
		}
		// fall through to the legacy format
	}

	out := StringList{}
	for _, piece := range strings.Split(data, legacyDelimiter) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	*l = out
	return nil
}
