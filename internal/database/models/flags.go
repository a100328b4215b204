package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// FlagSeparator terminates every flag in the textual "one;two;" form
const FlagSeparator = ";"

// Flags is an ordered set of short labels attached to projects, features and tasks.
// It is persisted as a JSON array.
type Flags []string

// ParseFlags converts the "one;two;" form into Flags, dropping duplicates.
// The input is expected to be validated already.
func ParseFlags(s string) Flags {
	flags := Flags{}
	seen := make(map[string]struct{})
	for _, token := range strings.Split(s, FlagSeparator) {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		flags = append(flags, token)
	}
	return flags
}

// String renders flags back into the "one;two;" form
func (f Flags) String() string {
	var b strings.Builder
	for _, token := range f {
		b.WriteString(token)
		b.WriteString(FlagSeparator)
	}
	return b.String()
}

// Contains reports whether the flag is present
func (f Flags) Contains(flag string) bool {
	for _, token := range f {
		if token == flag {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer
func (f Flags) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (f *Flags) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*f = Flags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Flags", value)
	}
	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return fmt.Errorf("failed to unmarshal flags: %w", err)
	}
	*f = Flags(tokens)
	return nil
}

// GormDataType stores flags as jsonb
func (Flags) GormDataType() string {
	return "jsonb"
}
