package archive

import (
	"os"
	"path/filepath"
	"sort"
)

// Store resolves districts, dates, sensors, and sample data against a
// traffic archive root on disk. A Store holds no mutable state between
// calls; every method opens and closes whatever files it needs.
type Store struct {
	Root string

	// IgnorePatterns excludes matching district/date/sensor names from
	// every listing (not from ReadSample, which is reached by exact
	// name and isn't a discovery path). Patterns are doublestar globs
	// matched against the bare name, e.g. "tmp_*" or ".*".
	IgnorePatterns []string
}

// NewStore returns a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{Root: root}
}

// Districts returns the district directory names under the archive root.
func (s *Store) Districts() []string {
	return filterIgnored(ListDir(s.Root, DirLister{}), s.IgnorePatterns)
}

// Dates returns the sorted list of sampled dates for district in year,
// merging loose date directories with date-prefixed archive bundles.
func (s *Store) Dates(district, year string) []string {
	dir := filepath.Join(s.Root, district, year)
	dates := filterIgnored(ListDir(dir, DateLister{}), s.IgnorePatterns)
	sort.Strings(dates)
	return dates
}

// Sensors returns the sensor IDs sampled for district on date, merging
// loose files in the date directory with members of the sibling archive
// bundle. A sensor with several sample files is listed once.
func (s *Store) Sensors(district, date string) []string {
	dateDir := s.dateDir(district, date)
	all := ListDir(dateDir, SidLister{})
	all = append(all, ListZip(s.bundlePath(district, date), SidLister{})...)
	seen := make(map[string]bool, len(all))
	var sensors []string
	for _, sid := range all {
		if !seen[sid] {
			seen[sid] = true
			sensors = append(sensors, sid)
		}
	}
	return filterIgnored(sensors, s.IgnorePatterns)
}

// Extensions returns the sample extensions recorded for sensor sid on
// date, merging loose files in the date directory with members of the
// sibling archive bundle.
func (s *Store) Extensions(district, date, sid string) []string {
	dateDir := s.dateDir(district, date)
	lister := ExtLister{Sid: sid}
	exts := ListDir(dateDir, lister)
	exts = append(exts, ListZip(s.bundlePath(district, date), lister)...)
	return filterIgnored(exts, s.IgnorePatterns)
}

// ReadSample returns the bytes of sid's sample file with extension ext on
// date, preferring a loose file and falling back to the sibling archive
// bundle. It returns (nil, false) if neither backing has a member of the
// length the sample-extension grammar predicts.
func (s *Store) ReadSample(district, date, sid, ext string) ([]byte, bool) {
	loosePath := filepath.Join(s.dateDir(district, date), sid+"."+ext)
	if data, ok := readLooseSample(loosePath, ext); ok {
		return data, true
	}

	bundlePath := s.bundlePath(district, date)
	member := sid + "." + ext
	size, ok := bundleMemberSize(bundlePath, member)
	if !ok || !IsValidSampleLen(ext, size) {
		return nil, false
	}
	data := ReadBundleMember(bundlePath, member)
	if data == nil || int64(len(data)) != size {
		return nil, false
	}
	return data, true
}

func readLooseSample(path, ext string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}
	if !IsValidSampleLen(ext, info.Size()) {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil || int64(len(data)) != info.Size() {
		return nil, false
	}
	return data, true
}

// dateDir returns <root>/<district>/<year>/<date>.
func (s *Store) dateDir(district, date string) string {
	return filepath.Join(s.Root, district, date[:4], date)
}

// bundlePath returns <root>/<district>/<year>/<date>.traffic.
func (s *Store) bundlePath(district, date string) string {
	return filepath.Join(s.Root, district, date[:4], date+"."+bundleExt)
}
