package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var experienceNumberRe = regexp.MustCompile(`\d+`)

// ParseExperience extracts a (min, max) year pair from a free-text experience
// expression such as "3-5 years" or "5+". A single value is treated as the
// minimum with a two-year spread. Unparsable input yields (nil, nil).
func ParseExperience(s string) (*int, *int) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	numbers := experienceNumberRe.FindAllString(s, -1)
	if len(numbers) == 0 {
		return nil, nil
	}

	first, err := strconv.Atoi(numbers[0])
	if err != nil {
		return nil, nil
	}

	if len(numbers) >= 2 {
		second, err := strconv.Atoi(numbers[1])
		if err != nil {
			return nil, nil
		}
		return &first, &second
	}

	upper := first + 2
	return &first, &upper
}
