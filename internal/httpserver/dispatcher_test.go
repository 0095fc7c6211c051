package httpserver

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigSnapshot(t *testing.T, root, date, xmlDoc string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0o755))
	f, err := os.Create(filepath.Join(root, "metro_config_"+date+".xml.gz"))
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(xmlDoc))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

const dispatcherSampleConfig = `<?xml version="1.0" encoding="UTF-8"?>
<tms_config time_stamp="2020-06-15T00:00:00">
  <corridor route="35W" dir="NB">
    <r_node name="rn1" lon="-93.1" lat="45.0"/>
  </corridor>
</tms_config>`

func TestDispatchDistricts(t *testing.T) {
	s, root, _ := newTestServer(t)
	writeSample(t, root, "metro", "20200615", "d1", "v30", []byte{1})

	res, err := s.dispatch("/districts")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, `["metro"]`, string(res.body))
}

func TestDispatch1Segment(t *testing.T) {
	s, root, _ := newTestServer(t)
	writeSample(t, root, s.DefaultDistrict, "20200615", "d1", "v30", []byte{1})

	res, err := s.dispatch("2020")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "20200615\n", string(res.body))
}

func TestDispatch2SegmentsGeneric(t *testing.T) {
	s, root, _ := newTestServer(t)
	writeSample(t, root, "metro", "20200615", "d1", "v30", []byte{1})

	res, err := s.dispatch("metro/20200615")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, `["d1"]`, string(res.body))
}

func TestDispatch3SegmentsSample(t *testing.T) {
	s, root, _ := newTestServer(t)
	data := make([]byte, 2880)
	writeSample(t, root, "metro", "20200615", "d1", "v30", data)

	res, err := s.dispatch("metro/20200615/d1.v30")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "application/octet_stream", res.contentType)
}

func TestDispatchMetroConfigFull(t *testing.T) {
	s, _, configRoot := newTestServer(t)
	writeConfigSnapshot(t, configRoot, "20200615", dispatcherSampleConfig)

	res, err := s.dispatch("metro_config/20200615.json")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "application/json", res.contentType)

	res, err = s.dispatch("metro_config/20200615.xml")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "application/xml", res.contentType)
}

func TestDispatchMetroConfigCorridors(t *testing.T) {
	s, _, configRoot := newTestServer(t)
	writeConfigSnapshot(t, configRoot, "20200615", dispatcherSampleConfig)

	res, err := s.dispatch("metro_config/20200615/corridors")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, `["35W_NB"]`, string(res.body))
}

func TestDispatchMetroConfigCorridorJSONAndXML(t *testing.T) {
	s, _, configRoot := newTestServer(t)
	writeConfigSnapshot(t, configRoot, "20200615", dispatcherSampleConfig)

	res, err := s.dispatch("metro_config/20200615/35W_NB.json")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "application/json", res.contentType)

	res, err = s.dispatch("metro_config/20200615/35W_NB.xml")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "application/xml", res.contentType)
}

func TestDispatchYearDateMismatchIsBadRequest(t *testing.T) {
	s, root, _ := newTestServer(t)
	writeSample(t, root, "metro", "20200615", "d1", "v30", []byte{1})

	_, err := s.dispatch("metro/2021/20200615")
	assert.ErrorIs(t, err, errBadRequest)
}

func TestDispatchYearDateMismatchJSONIs404NotBadRequest(t *testing.T) {
	s, root, _ := newTestServer(t)
	writeSample(t, root, "metro", "20200615", "d1", "v30", []byte{1})

	res, err := s.dispatch("metro/2021/20200615.json")
	require.NoError(t, err)
	assert.Nil(t, res, "the .json 3-param chain has no year/date fallback, so a mismatch is a plain 404")
}

func TestDispatchUnknownIsUndefined(t *testing.T) {
	s, _, _ := newTestServer(t)
	res, err := s.dispatch("a/b/c/d")
	require.NoError(t, err)
	assert.Nil(t, res)
}
