package archive

import (
	"archive/zip"
	"io"
)

// ReadBundleMember opens the ZIP-format archive bundle at zipPath and
// returns the full uncompressed bytes of the member named name, or nil if
// the bundle or member is missing or the read fails.
func ReadBundleMember(zipPath, name string) []byte {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil
	}
	defer r.Close()

	f, err := r.Open(name)
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return data
}

// bundleMemberSize returns the declared (uncompressed) size of member
// name in the bundle at zipPath, or (0, false) if it cannot be
// determined.
func bundleMemberSize(zipPath, name string) (int64, bool) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, false
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == name {
			return int64(f.UncompressedSize64), true
		}
	}
	return 0, false
}
