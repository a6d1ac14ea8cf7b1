package marathon

import (
	"encoding/json"
	"strings"
)

// Entry is one user's submitted stats for a single marathon. The source
// dataset is hand-maintained, so numeric fields may arrive as JSON numbers
// or as strings; decoding is tolerant and never fails on a malformed field.
type Entry struct {
	User       string     `json:"user"`
	Time       FlexString `json:"time,omitempty"`
	Pages      FlexInt    `json:"pages,omitempty"`
	Characters FlexInt    `json:"characters,omitempty"`
	Sources    FlexInt    `json:"sources,omitempty"`
	URL        string     `json:"url,omitempty"`
}

// Stats maps a marathon name ("<Season> <Year>") to its participant entries.
// Entry order within a marathon follows the dataset (insertion order).
type Stats map[string][]Entry

// FlexInt decodes a JSON number or numeric string into an int, defaulting to
// 0 for anything unparseable (null, objects, garbage strings).
type FlexInt int

func (v *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*v = 0
			return nil
		}
		*v = FlexInt(atoiLoose(str))
		return nil
	}
	// JSON numbers may be fractional; integer stats truncate toward zero.
	*v = FlexInt(int(atofLoose(s)))
	return nil
}

// FlexString decodes a JSON string or number, remembering which it was.
// Duration handling depends on the distinction: only string-typed times are
// parsed as "H:MM[:SS]", numeric times are treated as already-decimal hours.
type FlexString struct {
	Value    string
	IsString bool
}

func (v *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = FlexString{}
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*v = FlexString{}
			return nil
		}
		*v = FlexString{Value: str, IsString: true}
		return nil
	}
	*v = FlexString{Value: s}
	return nil
}
