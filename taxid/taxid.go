// Package taxid validates German personal tax identification numbers
// (steuerliche Identifikationsnummer).
//
// A tax-id has eleven decimal digits. The first ten identify the person and
// must not start with zero; the eleventh is a check digit computed with a
// variant of ISO 7064 MOD 11,10. Among the first ten digits exactly one value
// repeats: twice for ids issued under the 2015 rule, three times for ids
// issued under the 2016 rule.
//
// Validation is a pure predicate. Any input that is not a valid tax-id,
// including values of unrelated types, yields false.
package taxid

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Validate reports whether candidate is a valid tax-id.
//
// candidate may be of any type; it is converted to text before the digit
// rules are applied. excludeEra2015 and excludeEra2016 disable the
// respective digit-distribution rule. With both set, nothing validates.
func Validate(candidate any, excludeEra2015, excludeEra2016 bool) bool {
	text, ok := stringify(candidate)
	if !ok {
		return false
	}
	return ValidateString(text, excludeEra2015, excludeEra2016)
}

// ValidateString is Validate for text input.
func ValidateString(candidate string, excludeEra2015, excludeEra2016 bool) bool {
	_, err := check(candidate, excludeEra2015, excludeEra2016)
	return err == nil
}

// Era returns the issuance rule (2015 or 2016) a valid tax-id matched.
// ok is false when candidate is not valid under the enabled rules.
func Era(candidate string, excludeEra2015, excludeEra2016 bool) (era int, ok bool) {
	era, err := check(candidate, excludeEra2015, excludeEra2016)
	if err != nil {
		return 0, false
	}
	return era, true
}

func check(candidate string, excludeEra2015, excludeEra2016 bool) (int, error) {
	digits, err := parseDigits(candidate)
	if err != nil {
		return 0, err
	}

	var firstTen [10]int
	copy(firstTen[:], digits[:10])

	era, err := matchEra(newFrequency(firstTen), excludeEra2015, excludeEra2016)
	if err != nil {
		return 0, err
	}

	if checksum(firstTen) != digits[10] {
		return 0, errChecksum
	}
	return era, nil
}

// stringify never panics; a failing String method reports ok=false.
func stringify(candidate any) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	if candidate == nil {
		return "<nil>", true
	}
	return toText(candidate, map[uintptr]bool{}), true
}

func toText(candidate any, seen map[uintptr]bool) string {
	switch v := candidate.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(candidate)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		return joinElements(rv, seen)
	}
	return fmt.Sprint(candidate)
}

// joinElements renders a list as its elements separated by commas. Nil
// elements render empty, and so does a list reached again through itself.
func joinElements(rv reflect.Value, seen map[uintptr]bool) string {
	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		p := rv.Pointer()
		if seen[p] {
			return ""
		}
		seen[p] = true
		defer delete(seen, p)
	}

	parts := make([]string, rv.Len())
	for i := range parts {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface && elem.IsNil() {
			continue
		}
		parts[i] = toText(elem.Interface(), seen)
	}
	return strings.Join(parts, ",")
}

// Integral floats below 1e21 print without exponent so that 12345678911.0
// reads the same as the integer.
func formatFloat(f float64, bitSize int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
