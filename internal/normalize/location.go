package normalize

import "strings"

// locationAliases maps lowercase substrings to canonical city names, matched
// in declaration order so an input naming several cities always resolves to
// the same one. The table covers the metros the sample corpus draws from;
// unknown locations pass through title-cased.
var locationAliases = []struct {
	alias     string
	canonical string
}{
	{"bengaluru", "Bangalore"},
	{"bangalore", "Bangalore"},
	{"mumbai", "Mumbai"},
	{"bombay", "Mumbai"},
	{"delhi", "Delhi"},
	{"hyderabad", "Hyderabad"},
	{"pune", "Pune"},
	{"chennai", "Chennai"},
	{"kolkata", "Kolkata"},
	{"gurgaon", "Gurgaon"},
	{"gurugram", "Gurgaon"},
	{"noida", "Noida"},
}

// CleanLocation normalizes a location string to a canonical city name when
// the lookup table recognizes it. Unknown locations are returned title-cased
// rather than rejected. Empty input becomes "Not Specified".
func CleanLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return "Not Specified"
	}

	lower := strings.ToLower(location)
	if strings.Contains(lower, "remote") {
		return "Remote"
	}
	for _, entry := range locationAliases {
		if strings.Contains(lower, entry.alias) {
			return entry.canonical
		}
	}
	return titleCase(location)
}
