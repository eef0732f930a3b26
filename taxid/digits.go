package taxid

import "errors"

const (
	length   = 11
	idDigits = 10
	era2015  = 2015
	era2016  = 2016
	modulus  = 11
)

var (
	errLength      = errors.New("tax-id must have exactly 11 digits")
	errLeadingZero = errors.New("tax-id must not start with 0")
	errNotDigit    = errors.New("tax-id must contain only decimal digits")
	errPattern     = errors.New("tax-id digit distribution matches no era rule")
	errChecksum    = errors.New("tax-id check digit mismatch")
)

func parseDigits(candidate string) ([length]int, error) {
	var digits [length]int

	if len(candidate) != length {
		return digits, errLength
	}
	if candidate[0] == '0' {
		return digits, errLeadingZero
	}

	for i := 0; i < length; i++ {
		c := candidate[i]
		if c < '0' || c > '9' {
			return digits, errNotDigit
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

// frequency holds, for the first ten digits, how often each digit value
// occurs and how many digit values share each occurrence count.
type frequency struct {
	counts    [10]int
	histogram [idDigits + 1]int
	distinct  int
}

func newFrequency(firstTen [idDigits]int) frequency {
	var f frequency
	for _, d := range firstTen {
		f.counts[d]++
	}
	for _, n := range f.counts {
		if n == 0 {
			continue
		}
		f.distinct++
		f.histogram[n]++
	}
	return f
}

func matchEra(f frequency, excludeEra2015, excludeEra2016 bool) (int, error) {
	switch {
	case !excludeEra2015 && f.distinct == 9 && f.histogram[2] == 1 && f.histogram[1] == 8:
		return era2015, nil
	case !excludeEra2016 && f.distinct == 8 && f.histogram[3] == 1 && f.histogram[1] == 7:
		return era2016, nil
	}
	return 0, errPattern
}

// checksum computes the check digit of the first ten digits
// (ISO 7064 MOD 11,10 variant).
func checksum(firstTen [idDigits]int) int {
	product := 10
	for _, d := range firstTen {
		sum := (d + product) % 10
		if sum == 0 {
			sum = 10
		}
		product = (sum * 2) % modulus
	}

	digit := modulus - product
	if digit == 10 {
		digit = 0
	}
	return digit
}
