package archive

import (
	"archive/zip"
	"os"
	"path"
)

// Lister filters directory or archive-bundle entries by name. Check is
// given the entry's base name and whether it is a directory (always false
// for archive bundle members); it returns the name to report (which may
// differ from the input, e.g. a stripped extension) and whether to
// include the entry at all.
type Lister interface {
	Check(name string, isDir bool) (string, bool)
}

// ListDir enumerates the entries of dir, skipping symlinks and any entry
// whose file type cannot be determined, and returns the names accepted by
// lister. A missing or unreadable directory yields an empty slice, not an
// error.
func ListDir(dir string, lister Lister) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}
		if name, ok := lister.Check(entry.Name(), entry.IsDir()); ok {
			names = append(names, name)
		}
	}
	return names
}

// ListZip enumerates the members of a ZIP-format archive bundle at path,
// applying lister to each member's base name (any internal directory
// prefix is dropped) with isDir always false. A missing or unreadable
// bundle yields an empty slice, not an error.
func ListZip(zipPath string, lister Lister) []string {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		base := path.Base(f.Name)
		if name, ok := lister.Check(base, false); ok {
			names = append(names, name)
		}
	}
	return names
}
