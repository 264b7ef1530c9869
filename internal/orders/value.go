package orders

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	renderAbsent = "undefined"
	renderNull   = "null"
	renderObject = "[object Object]"
)

var nullLiteral = json.RawMessage("null")

// Value holds one raw JSON value from an order submission. Storefront
// clients send price and quantity as numbers or strings depending on the
// form, so every field is kept as-is and rendered on demand.
//
// An absent field and an explicit null are distinct: the zero Value is
// absent, a decoded null keeps the literal.
type Value struct {
	raw json.RawMessage
}

// StringValue builds a Value holding a JSON string.
func StringValue(s string) Value {
	b, _ := json.Marshal(s)
	return Value{raw: b}
}

// NumberValue builds a Value holding a JSON number.
func NumberValue(f float64) Value {
	return Value{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// NullValue builds a Value holding an explicit JSON null.
func NullValue() Value {
	return Value{raw: nullLiteral}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return nullLiteral, nil
	}
	return v.raw, nil
}

// Present reports whether the field appeared in the body at all.
func (v Value) Present() bool {
	return len(v.raw) > 0
}

// IsNull reports whether the field was sent as an explicit null.
func (v Value) IsNull() bool {
	return string(v.raw) == renderNull
}

// Truthy reports whether the value counts as filled in: absent, null, "",
// 0 and false do not.
func (v Value) Truthy() bool {
	if !v.Present() || v.IsNull() {
		return false
	}
	switch v.raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return false
		}
		return s != ""
	case 't':
		return true
	case 'f':
		return false
	case '{', '[':
		return true
	default:
		f, err := strconv.ParseFloat(string(v.raw), 64)
		if err != nil {
			return false
		}
		return f != 0
	}
}

// String renders the value the way it reads in the notification text:
// absent fields as "undefined", null as "null", strings verbatim, numbers
// in shortest decimal form, objects as "[object Object]" and arrays as
// their elements joined by commas.
func (v Value) String() string {
	if !v.Present() {
		return renderAbsent
	}
	return render(v.raw, false)
}

// render formats one JSON value. Inside an array, null renders empty.
func render(raw json.RawMessage, inArray bool) string {
	if string(raw) == renderNull {
		if inArray {
			return ""
		}
		return renderNull
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case 't', 'f':
		return string(raw)
	case '{':
		return renderObject
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return string(raw)
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = render(e, true)
		}
		return strings.Join(parts, ",")
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return string(raw)
		}
		if f == 0 {
			return "0"
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
