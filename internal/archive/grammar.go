package archive

import "strings"

// sampleType pairs a type-prefix token with its bytes-per-sample.
type sampleType struct {
	prefix string
	bytes  int64
}

// sampleTypes is ordered so that longer, more specific prefixes are tried
// before shorter ones that would otherwise match first (vmc before vm
// before v), matching the grammar's prefix-longest-first rule.
var sampleTypes = []sampleType{
	{"vmc", 1},
	{"vs", 1},
	{"vm", 1},
	{"vl", 1},
	{"v", 1},
	{"o", 2},
	{"c", 2},
	{"s", 1},
	{"pr", 2},
	{"pt", 1},
}

// samplePeriod pairs a period-suffix token (seconds between samples) with
// the number of samples recorded per day.
type samplePeriod struct {
	suffix  string
	samples int64
}

// samplePeriods is ordered longest-suffix-first so that, e.g., "120" is
// preferred over "20" when matching the tail of an extension like
// "v120" — a shorter numeric suffix is never allowed to shadow a longer
// one that also matches.
var samplePeriods = []samplePeriod{
	{"86400", 1},
	{"43200", 2},
	{"28800", 3},
	{"14400", 6},
	{"7200", 12},
	{"3600", 24},
	{"1800", 48},
	{"1200", 72},
	{"900", 96},
	{"600", 144},
	{"300", 288},
	{"240", 360},
	{"120", 720},
	{"90", 960},
	{"60", 1440},
	{"30", 2880},
	{"20", 4320},
	{"15", 5760},
	{"10", 8640},
	{"6", 14400},
	{"5", 17280},
}

// vlogExt is the raw sensor journal extension; it carries no fixed length.
const vlogExt = "vlog"

// matchSampleType returns the longest matching type prefix of ext.
func matchSampleType(ext string) (sampleType, bool) {
	for _, t := range sampleTypes {
		if strings.HasPrefix(ext, t.prefix) {
			return t, true
		}
	}
	return sampleType{}, false
}

// matchSamplePeriod returns the longest matching period suffix of ext.
func matchSamplePeriod(ext string) (samplePeriod, bool) {
	for _, p := range samplePeriods {
		if strings.HasSuffix(ext, p.suffix) {
			return p, true
		}
	}
	return samplePeriod{}, false
}

// IsSampleExt reports whether ext is a recognized sample extension: either
// the literal "vlog" or a type-prefix/period-suffix decomposition that
// exactly partitions ext with no leftover characters.
func IsSampleExt(ext string) bool {
	if ext == vlogExt {
		return true
	}
	t, ok := matchSampleType(ext)
	if !ok {
		return false
	}
	p, ok := matchSamplePeriod(ext)
	if !ok {
		return false
	}
	return len(t.prefix)+len(p.suffix) == len(ext)
}

// IsValidSampleLen reports whether length is the expected byte length for
// a sample file with the given extension. vlog files accept any length.
func IsValidSampleLen(ext string, length int64) bool {
	if ext == vlogExt {
		return true
	}
	t, ok := matchSampleType(ext)
	if !ok {
		return false
	}
	p, ok := matchSamplePeriod(ext)
	if !ok {
		return false
	}
	if len(t.prefix)+len(p.suffix) != len(ext) {
		return false
	}
	return t.bytes*p.samples == length
}
