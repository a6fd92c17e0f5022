package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

// Number is a JSON number that may also arrive as a numeric string.
// Anything else leaves it invalid.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if isNull(data) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number{Value: f, Valid: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = Number{Value: f, Valid: true}
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// FlexText is a scalar rendered as text. Numbers and booleans are kept in
// their JSON spelling; blank strings, null and composite values are invalid.
type FlexText struct {
	Text  string
	Valid bool
}

// NewFlexText returns s as text, invalid when blank.
func NewFlexText(s string) FlexText {
	return FlexText{Text: s, Valid: strings.TrimSpace(s) != ""}
}

func (t *FlexText) UnmarshalJSON(data []byte) error {
	*t = FlexText{}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if s, ok := scalarText(raw); ok && strings.TrimSpace(s) != "" {
		*t = FlexText{Text: s, Valid: true}
	}
	return nil
}

func (t FlexText) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return jsonNull, nil
	}
	return json.Marshal(t.Text)
}

// StringList accepts an array of scalars or a single string. Composite items
// are kept as their JSON encoding so nothing the checker reported is lost.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case []any:
		items := make(StringList, 0, len(v))
		for _, item := range v {
			if s, ok := itemText(item); ok {
				items = append(items, s)
			}
		}
		*l = items
	case string:
		if strings.TrimSpace(v) != "" {
			*l = StringList{v}
		}
	}
	return nil
}

// PageIssues accepts an array whose entries are objects or bare strings.
type PageIssues []PageIssue

func (p *PageIssues) UnmarshalJSON(data []byte) error {
	*p = nil
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	issues := make(PageIssues, 0, len(entries))
	for _, entry := range entries {
		var issue PageIssue
		if err := json.Unmarshal(entry, &issue); err == nil {
			issues = append(issues, issue)
			continue
		}
		var text FlexText
		if err := json.Unmarshal(entry, &text); err == nil && text.Valid {
			issues = append(issues, PageIssue{Issue: text})
		}
	}
	*p = issues
	return nil
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}

func itemText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := scalarText(v); ok {
		return s, true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(b), true
}
