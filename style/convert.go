package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrConversion is the error wrapped by all failing conversions from raw
// property strings to native values.
var ErrConversion = errors.New("cannot convert property value")

// parser converts a raw property value to a native value.
// members is only used for enums.
type parser func(p Property, members []string) (Value, error)

var parsers = map[ValueType]parser{
	Bool:    parseBool,
	Int:     parseInt,
	Float:   parseFloat,
	String:  parseString,
	Enum:    parseEnum,
	Color:   parseColor,
	BoxType: parseBox,
}

// Convert converts a raw themed value into a native value, given the semantic
// type tag of the receiving property. members lists the legal values for
// enum-typed properties and is ignored otherwise.
//
// Errors returned by Convert wrap ErrConversion.
func Convert(t ValueType, p Property, members []string) (Value, error) {
	parse, ok := parsers[t]
	if !ok {
		return nil, fmt.Errorf("%w: no parser for value type %s", ErrConversion, t)
	}
	v, err := parse(Property(strings.TrimSpace(p.String())), members)
	if err != nil {
		tracer().Debugf("conversion of %q to %s failed: %v", p, t, err)
		return nil, err
	}
	return v, nil
}

func conversionError(p Property, t ValueType, detail string) error {
	if detail == "" {
		return fmt.Errorf("%w: %q is not a valid %s", ErrConversion, p, t)
	}
	return fmt.Errorf("%w: %q is not a valid %s: %s", ErrConversion, p, t, detail)
}

func parseBool(p Property, _ []string) (Value, error) {
	switch strings.ToLower(p.String()) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return nil, conversionError(p, Bool, "")
}

// trimUnit strips a "px" unit suffix. Scene coordinates are in pixels, other
// units are not supported.
func trimUnit(s string) string {
	return strings.TrimSuffix(strings.ToLower(s), "px")
}

func parseInt(p Property, _ []string) (Value, error) {
	n, err := strconv.Atoi(trimUnit(p.String()))
	if err != nil {
		return nil, conversionError(p, Int, "")
	}
	return n, nil
}

func parseFloat(p Property, _ []string) (Value, error) {
	s := p.String()
	div := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		div = 100
	} else {
		s = trimUnit(s)
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(x) {
		return nil, conversionError(p, Float, "")
	}
	return x / div, nil
}

// finite rejects NaN and infinities, which would never compare equal to a
// previously applied value.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func parseString(p Property, _ []string) (Value, error) {
	s := p.String()
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], nil
		}
	}
	return s, nil
}

func parseEnum(p Property, members []string) (Value, error) {
	for _, m := range members {
		if strings.EqualFold(m, p.String()) {
			return m, nil
		}
	}
	return nil, conversionError(p, Enum, "expected one of "+strings.Join(members, "|"))
}

// parseBox accepts "w h" or "x y w h".
func parseBox(p Property, _ []string) (Value, error) {
	fields := strings.Fields(strings.ReplaceAll(p.String(), ",", " "))
	if len(fields) != 2 && len(fields) != 4 {
		return nil, conversionError(p, BoxType, "expecting 2 or 4 values")
	}
	n := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(trimUnit(f), 64)
		if err != nil || !finite(x) {
			return nil, conversionError(p, BoxType, "")
		}
		n[i] = x
	}
	var b Box
	if len(n) == 2 {
		b = Box{Width: n[0], Height: n[1]}
	} else {
		b = Box{X: n[0], Y: n[1], Width: n[2], Height: n[3]}
	}
	if b.Width < 0 || b.Height < 0 {
		return nil, conversionError(p, BoxType, "negative extent")
	}
	return b, nil
}
