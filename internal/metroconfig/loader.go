package metroconfig

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// readXMLFile opens and fully decompresses the metro_config_<date>.xml.gz
// snapshot for date under root, returning (nil, false) if the file is
// missing or cannot be decompressed.
func readXMLFile(root, date string) ([]byte, bool) {
	path := filepath.Join(root, "metro_config_"+date+".xml.gz")
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, false
	}
	return data, true
}
