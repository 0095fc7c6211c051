package metroconfig

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfigXML = `<?xml version="1.0" encoding="UTF-8"?>
<tms_config time_stamp="2020-06-15T00:00:00">
  <corridor route="35W" dir="NB">
    <r_node name="rn1" lon="-93.1" lat="45.0">
      <detector name="d1"/>
    </r_node>
  </corridor>
  <corridor route="94" dir="EB">
    <r_node name="rn2" lon="-93.2" lat="45.1"/>
  </corridor>
</tms_config>`

func writeGzippedConfig(t *testing.T, root, date string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0o755))
	path := filepath.Join(root, "metro_config_"+date+".xml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleConfigXML))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}

func TestStoreRawXML(t *testing.T) {
	root := t.TempDir()
	writeGzippedConfig(t, root, "20200615")

	s := NewStore(root)
	data, ok := s.RawXML("20200615")
	require.True(t, ok)
	assert.Contains(t, string(data), "tms_config")
}

func TestStoreRawXMLMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, ok := s.RawXML("20200615")
	assert.False(t, ok)
}

func TestStoreRawXMLInvalidDate(t *testing.T) {
	s := NewStore(t.TempDir())
	_, ok := s.RawXML("not-a-date")
	assert.False(t, ok)
}

func TestStoreFullJSON(t *testing.T) {
	root := t.TempDir()
	writeGzippedConfig(t, root, "20200615")

	s := NewStore(root)
	data, ok := s.FullJSON("20200615")
	require.True(t, ok)

	var cfg TmsConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Len(t, cfg.Corridor, 2)
	assert.Equal(t, "35W", cfg.Corridor[0].Route)
}

func TestStoreCorridorXMLAndJSON(t *testing.T) {
	root := t.TempDir()
	writeGzippedConfig(t, root, "20200615")

	s := NewStore(root)
	xmlData, ok := s.CorridorXML("20200615", "35W", "NB")
	require.True(t, ok)
	assert.Contains(t, string(xmlData), `route="35W"`)

	jsonData, ok := s.CorridorJSON("20200615", "35W", "NB")
	require.True(t, ok)

	var cor Corridor
	require.NoError(t, json.Unmarshal(jsonData, &cor))
	assert.Equal(t, "35W", cor.Route)
	assert.Equal(t, "NB", cor.Dir)
	require.Len(t, cor.RNode, 1)
	require.NotNil(t, cor.RNode[0].NType)
	assert.Equal(t, "Station", *cor.RNode[0].NType)
}

func TestStoreCorridorNotFound(t *testing.T) {
	root := t.TempDir()
	writeGzippedConfig(t, root, "20200615")

	s := NewStore(root)
	_, ok := s.CorridorXML("20200615", "nope", "XX")
	assert.False(t, ok)
}

func TestStoreFullJSONFailsWhenRequiredAttributeAbsent(t *testing.T) {
	const missingDescription = `<?xml version="1.0" encoding="UTF-8"?>
<tms_config time_stamp="2020-06-15T00:00:00">
  <camera name="C001"/>
</tms_config>`

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(root, 0o755))
	path := filepath.Join(root, "metro_config_20200615.xml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(missingDescription))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	s := NewStore(root)
	_, ok := s.FullJSON("20200615")
	assert.False(t, ok, "camera missing description must fail the transform, not emit an empty string")
}

func TestStoreCorridorList(t *testing.T) {
	root := t.TempDir()
	writeGzippedConfig(t, root, "20200615")

	s := NewStore(root)
	assert.Equal(t, []string{"35W_NB", "94_EB"}, s.CorridorList("20200615"))
}
