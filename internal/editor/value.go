package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the value type a field accepts.
type Kind int

// Field kinds
const (
	KindText Kind = iota
	KindFlag
)

func (k Kind) String() string {
	if k == KindFlag {
		return "flag"
	}
	return "text"
}

// Value is the tagged value passed to an update.
type Value struct {
	kind Kind
	text string
	flag bool
}

// Text wraps a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Flag wraps a boolean value.
func Flag(b bool) Value { return Value{kind: KindFlag, flag: b} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

func (v Value) asText(entity, field string) (string, error) {
	if v.kind != KindText {
		return "", &FieldError{Entity: entity, Field: field, Message: "expected text value, got " + v.kind.String()}
	}
	return v.text, nil
}

func (v Value) asFlag(entity, field string) (bool, error) {
	if v.kind != KindFlag {
		return false, &FieldError{Entity: entity, Field: field, Message: "expected flag value, got " + v.kind.String()}
	}
	return v.flag, nil
}

// ParseFormValue converts a raw HTML form value into a Value of the given kind.
// Checkbox values "on", "true", "1" are true; anything else is false.
func ParseFormValue(kind Kind, raw string) Value {
	if kind == KindFlag {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "on", "true", "1", "yes":
			return Flag(true)
		}
		return Flag(false)
	}
	return Text(raw)
}

// ParseJSONValue converts a decoded JSON value into a Value of the given kind.
func ParseJSONValue(kind Kind, raw any) (Value, error) {
	switch kind {
	case KindFlag:
		switch v := raw.(type) {
		case bool:
			return Flag(v), nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Value{}, fmt.Errorf("invalid flag value %q: %w", v, err)
			}
			return Flag(b), nil
		}
		return Value{}, fmt.Errorf("invalid flag value of type %T", raw)
	default:
		switch v := raw.(type) {
		case string:
			return Text(v), nil
		case nil:
			return Text(""), nil
		}
		return Value{}, fmt.Errorf("invalid text value of type %T", raw)
	}
}
