package archive

import (
	"path/filepath"
	"strings"
)

// dateBundleNameLen is the length of "YYYYMMDD.traffic": 8 date digits
// plus the 8-character ".traffic" suffix.
const dateBundleNameLen = 16

// bundleExt is the archive bundle file extension, without the dot.
const bundleExt = "traffic"

// DirLister accepts only directory entries, returning their name
// unchanged. Used to enumerate districts under the archive root.
type DirLister struct{}

func (DirLister) Check(name string, isDir bool) (string, bool) {
	if isDir {
		return name, true
	}
	return "", false
}

// DateLister accepts directories whose name is a valid date, and
// non-directory entries whose name has length 16, ends in ".traffic",
// and whose first 8 characters form a valid date — returning just the
// date prefix in that case. Used to enumerate sampled dates in a year.
type DateLister struct{}

func (DateLister) Check(name string, isDir bool) (string, bool) {
	if isDir {
		if IsValidDate(name) {
			return name, true
		}
		return "", false
	}
	if len(name) == dateBundleNameLen && strings.HasSuffix(name, "."+bundleExt) {
		date := name[:8]
		if IsValidDate(date) {
			return date, true
		}
	}
	return "", false
}

// SidLister accepts non-directory entries whose extension is a valid
// sample extension, returning the file stem (sensor ID). Used to
// enumerate sensors sampled on a date.
type SidLister struct{}

func (SidLister) Check(name string, isDir bool) (string, bool) {
	if isDir {
		return "", false
	}
	ext := extOf(name)
	if ext == "" || !IsSampleExt(ext) {
		return "", false
	}
	return stemOf(name), true
}

// ExtLister accepts non-directory entries whose stem equals Sid,
// returning the extension iff it is a valid sample extension. Used to
// enumerate the sample extensions recorded for one sensor on a date.
type ExtLister struct {
	Sid string
}

func (l ExtLister) Check(name string, isDir bool) (string, bool) {
	if isDir {
		return "", false
	}
	if stemOf(name) != l.Sid {
		return "", false
	}
	ext := extOf(name)
	if ext == "" || !IsSampleExt(ext) {
		return "", false
	}
	return ext, true
}

// stemOf returns the file stem (name with its final extension removed).
func stemOf(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext)
}

// extOf returns the file extension without its leading dot, or "" if
// name has no extension.
func extOf(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimPrefix(ext, ".")
}
