package cricbuzz

import (
	"bytes"
	"strconv"

	"github.com/rotisserie/eris"
)

// FlexInt is an int that unmarshals from a JSON number or a quoted
// numeric string ("142", 142, 142.0).
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return eris.Wrapf(err, "cricbuzz: parse int %q", s)
	}
	*f = FlexInt(int(v))
	return nil
}

// FlexFloat is a float64 that unmarshals from a JSON number or a quoted
// numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return eris.Wrapf(err, "cricbuzz: parse float %q", s)
	}
	*f = FlexFloat(v)
	return nil
}
