package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseSalary extracts a (min, max) pair from a free-text salary expression
// such as "5-8 LPA" or "₹500,000". A single value is treated as the minimum
// with a 20% spread. Unparsable input yields (nil, nil) rather than an error
// so a malformed field never fails the batch.
func ParseSalary(s string) (*float64, *float64) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	// Thousands separators would otherwise split one figure into several.
	s = strings.ReplaceAll(s, ",", "")

	numbers := salaryNumberRe.FindAllString(s, -1)
	if len(numbers) == 0 {
		return nil, nil
	}

	first, err := strconv.ParseFloat(numbers[0], 64)
	if err != nil {
		return nil, nil
	}

	if len(numbers) >= 2 {
		second, err := strconv.ParseFloat(numbers[1], 64)
		if err != nil {
			return nil, nil
		}
		return &first, &second
	}

	upper := first * 1.2
	return &first, &upper
}
