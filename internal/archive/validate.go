// Package archive implements the traffic sample archive: date/district
// validation, the sample-extension grammar, directory and bundle listing,
// and the hybrid loose-file/bundle sensor data reader.
package archive

import "strconv"

// ParseYear parses s as a year in [1900, 9999].
func ParseYear(s string) (int, bool) {
	yr, err := strconv.Atoi(s)
	if err != nil || yr < 1900 || yr > 9999 {
		return 0, false
	}
	return yr, true
}

// ParseMonth parses s as a month in [1, 12].
func ParseMonth(s string) (int, bool) {
	mo, err := strconv.Atoi(s)
	if err != nil || mo < 1 || mo > 12 {
		return 0, false
	}
	return mo, true
}

// ParseDay parses s as a day in [1, 31].
func ParseDay(s string) (int, bool) {
	da, err := strconv.Atoi(s)
	if err != nil || da < 1 || da > 31 {
		return 0, false
	}
	return da, true
}

// IsValidDate reports whether date is an 8-character YYYYMMDD string with
// each component in range. There is no calendar validation: February 30
// is accepted.
func IsValidDate(date string) bool {
	if len(date) != 8 {
		return false
	}
	_, yrOK := ParseYear(date[:4])
	_, moOK := ParseMonth(date[4:6])
	_, daOK := ParseDay(date[6:8])
	return yrOK && moOK && daOK
}

// IsValidYearDate reports whether year parses as a valid year and date is
// a valid date string. It does not check that date falls within year;
// callers that need that comparison do it themselves against date[:4].
func IsValidYearDate(year, date string) bool {
	_, yrOK := ParseYear(year)
	return yrOK && IsValidDate(date)
}
