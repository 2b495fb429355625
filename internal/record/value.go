package record

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ValueKind uint8

const (
	KindNumber ValueKind = iota
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a single literal: either an arbitrary-precision number or a string.
// The zero Value is the number 0.
type Value struct {
	kind ValueKind
	num  decimal.Decimal
	str  string
}

func NumberValue(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

func IntValue(i int64) Value {
	return NumberValue(decimal.NewFromInt(i))
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ParseNumber builds a number Value from its decimal text.
func ParseNumber(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("record: invalid number %q: %w", s, err)
	}
	return NumberValue(d), nil
}

func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric payload; ok is false for strings.
func (v Value) Number() (decimal.Decimal, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string payload; ok is false for numbers.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Equal compares kind and payload. Numbers compare by value, so 1 and 1.0 are equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.num.Equal(o.num)
	}
	return v.str == o.str
}

// Key is a canonical form usable as a map key; Equal values share a Key.
func (v Value) Key() string {
	if v.kind == KindNumber {
		return "n:" + v.num.String()
	}
	return "s:" + v.str
}

func (v Value) String() string {
	if v.kind == KindNumber {
		return v.num.String()
	}
	return v.str
}

// SQL renders the value as a literal that parses back to an equal Value.
func (v Value) SQL() string {
	if v.kind == KindNumber {
		return v.num.String()
	}
	return "'" + v.str + "'"
}
