package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QuestionID accepts a JSON number or string and keeps its textual form, so
// answers keyed by "1" match a question whose id arrived as 1.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("question id: %w", err)
	}
	*id = QuestionID(s)
	return nil
}

// MarshalJSON writes integral ids back as numbers.
func (id QuestionID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id QuestionID) String() string {
	return string(id)
}

// FlexString accepts any JSON value and stores it as text. Model output and
// clients are not consistent about quoting answers such as 42 or true, and
// multi-select answers arrive as lists, which are joined with ", ". Objects
// are kept as compact JSON.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexInt accepts a JSON number or a numeric string such as "45".
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("integer: %w", err)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("integer: invalid value %q", s)
	}
	*n = FlexInt(v)
	return nil
}

// FlexList accepts a JSON list or a single value, which becomes a one item
// list. Elements are read like FlexString.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] != '[' {
		s, err := flexString(data)
		if err != nil {
			return err
		}
		*l = FlexList{s}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	list := make(FlexList, 0, len(items))
	for _, item := range items {
		s, err := flexString(item)
		if err != nil {
			return err
		}
		list = append(list, s)
	}
	*l = list
	return nil
}

func flexString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return "", err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, err := flexString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	return scalarString(data)
}

func scalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a scalar value, got %s", data)
	}

	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		return string(data), nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
