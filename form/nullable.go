package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// NullFloat is an optional numeric form input. Finite numbers and numeric
// strings decode to a value; "", null and whitespace decode to absent.
type NullFloat struct {
	Value float64
	Valid bool
}

// Float builds a present NullFloat.
func Float(v float64) NullFloat { return NullFloat{Value: v, Valid: true} }

// Ptr returns nil when absent.
func (n NullFloat) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *NullFloat) UnmarshalJSON(b []byte) error {
	s, empty, err := scalar(b)
	if err != nil || empty {
		*n = NullFloat{}
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("not a number: %q", s)
	}
	*n = NullFloat{Value: v, Valid: true}
	return nil
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NullInt is the integer counterpart of NullFloat.
type NullInt struct {
	Value int64
	Valid bool
}

// Int builds a present NullInt.
func Int(v int64) NullInt { return NullInt{Value: v, Valid: true} }

// Ptr returns nil when absent.
func (n NullInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	s, empty, err := scalar(b)
	if err != nil || empty {
		*n = NullInt{}
		return err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("not an integer: %q", s)
		}
		v = int64(f)
	}
	*n = NullInt{Value: v, Valid: true}
	return nil
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// scalar unwraps a JSON number or string; empty reports null/"".
func scalar(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", true, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}
	return string(b), false, nil
}

// nullValue lets validator tags (gte, lte, required) see through the wrappers.
func nullValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case NullFloat:
		if v.Valid {
			return v.Value
		}
	case NullInt:
		if v.Valid {
			return v.Value
		}
	}
	return nil
}

// UpperCode trims and upper-cases a code such as a coupon code.
func UpperCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
