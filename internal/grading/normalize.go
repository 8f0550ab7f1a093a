package grading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Answer is either a single text value or an ordered list of strings.
// The zero value is an empty text answer.
type Answer struct {
	Text   string
	Items  []string
	IsList bool
}

// Text builds a text answer.
func Text(s string) Answer { return Answer{Text: s} }

// List builds a list answer. The items are copied.
func List(items ...string) Answer {
	return Answer{Items: append([]string{}, items...), IsList: true}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsList {
		if a.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Items)
	}
	return json.Marshal(a.Text)
}

// UnmarshalJSON accepts a string, an array of strings or null.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*a = Answer{}
		return nil
	case data[0] == '[':
		var items []*string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("answer list: %w", err)
		}
		out := make([]string, len(items))
		for i, s := range items {
			if s != nil {
				out[i] = *s
			}
		}
		*a = Answer{Items: out, IsList: true}
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("answer must be a string or a list of strings: %w", err)
		}
		*a = Answer{Text: s}
		return nil
	}
}

// Normalize trims, NFC-normalises and case-folds the answer. It returns a new
// value and leaves the input untouched.
func Normalize(a Answer) Answer {
	if !a.IsList {
		return Answer{Text: normalizeString(a.Text)}
	}
	items := make([]string, len(a.Items))
	for i, s := range a.Items {
		items[i] = normalizeString(s)
	}
	return Answer{Items: items, IsList: true}
}

func normalizeString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Casers keep state, so one per call.
	return cases.Fold().String(norm.NFC.String(s))
}

// IsBlank reports whether a normalized answer carries nothing to grade. A list
// is blank when none of its elements is.
func IsBlank(a Answer) bool {
	if !a.IsList {
		return strings.TrimSpace(a.Text) == ""
	}
	for _, s := range a.Items {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
