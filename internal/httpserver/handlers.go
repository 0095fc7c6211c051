package httpserver

import (
	"errors"
	"strings"

	"github.com/mnit-rtmc/trafdat/internal/archive"
)

// errBadRequest signals the date-year-mismatch short-circuit of
// spec §4.6: a validator failure within a fallback branch yields
// "undefined" (try the next branch), except this one case, which aborts
// the whole fallback chain with a 400.
var errBadRequest = errors.New("bad request")

// outputMode selects how sample bytes are rendered: as a binary body or
// as a JSON array of decimal byte values. Kept as a tagged variant
// threaded through the reader rather than dispatched over a type
// parameter, per the polymorphic-output-backends design note.
type outputMode int

const (
	outputBinary outputMode = iota
	outputJSON
)

// firstOf tries each alternative in order and returns the first defined
// result. A bad-request error short-circuits immediately without trying
// later alternatives.
func firstOf(alts ...func() (*handlerResult, error)) (*handlerResult, error) {
	for _, alt := range alts {
		res, err := alt()
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

func (s *Server) handleDistricts() *handlerResult {
	return listJSONResult(s.Archive.Districts())
}

// handleDidYear serves the sorted plain-text date list for district/year.
func (s *Server) handleDidYear(district, year string) *handlerResult {
	if _, ok := archive.ParseYear(year); !ok {
		return nil
	}
	text, ok := dateListText(s.Archive.Dates(district, year))
	if !ok {
		return nil
	}
	return textResult(text)
}

// handleDidYearJSON serves the JSON date list for district/year.
func (s *Server) handleDidYearJSON(district, year string) *handlerResult {
	if _, ok := archive.ParseYear(year); !ok {
		return nil
	}
	return listJSONResult(s.Archive.Dates(district, year))
}

// handleDidDate serves the JSON sensor list for district/date.
func (s *Server) handleDidDate(district, date string) *handlerResult {
	if !archive.IsValidDate(date) {
		return nil
	}
	return listJSONResult(s.Archive.Sensors(district, date))
}

// handleDidYearDate validates year/date together, short-circuiting with
// a bad-request error on a year/date-prefix mismatch, then serves the
// same JSON sensor list as handleDidDate.
func (s *Server) handleDidYearDate(district, year, date string) (*handlerResult, error) {
	if !archive.IsValidYearDate(year, date) {
		return nil, nil
	}
	if date[:4] != year {
		return nil, errBadRequest
	}
	return s.handleDidDate(district, date), nil
}

// handleDidDateSid serves the JSON extension list for a sensor on a date.
func (s *Server) handleDidDateSid(district, date, sid string) *handlerResult {
	if !archive.IsValidDate(date) {
		return nil
	}
	return listJSONResult(s.Archive.Extensions(district, date, sid))
}

// handleDidDateSidExt reads a sample file for sid.ext on date and renders
// it per mode.
func (s *Server) handleDidDateSidExt(district, date, sidExt string, mode outputMode) *handlerResult {
	sid, ext, ok := splitSidExt(sidExt)
	if !ok || !archive.IsValidDate(date) || !archive.IsSampleExt(ext) {
		return nil
	}
	data, ok := s.Archive.ReadSample(district, date, sid, ext)
	if !ok {
		return nil
	}
	if mode == outputJSON {
		j := byteArrayJSON(data)
		if j == nil {
			return nil
		}
		return jsonResult(j)
	}
	return binaryResult(data)
}

// handleDidYearDateSidExt validates year/date together (short-circuiting
// on mismatch) and then serves the same sample data as
// handleDidDateSidExt.
func (s *Server) handleDidYearDateSidExt(district, year, date, sidExt string, mode outputMode) (*handlerResult, error) {
	if !archive.IsValidYearDate(year, date) {
		return nil, nil
	}
	if date[:4] != year {
		return nil, errBadRequest
	}
	return s.handleDidDateSidExt(district, date, sidExt, mode), nil
}

// handle1Param serves /P1: P1 is a year under the default district.
func (s *Server) handle1Param(year string) *handlerResult {
	return s.handleDidYear(s.DefaultDistrict, year)
}

// handle2ParamsJSON serves /P1/P2.json: JSON date list for district=P1
// year=P2.
func (s *Server) handle2ParamsJSON(p1, p2 string) *handlerResult {
	return s.handleDidYearJSON(p1, p2)
}

// handle2Params serves /P1/P2 via the three-way fallback of spec §4.6.
func (s *Server) handle2Params(p1, p2 string) (*handlerResult, error) {
	return firstOf(
		func() (*handlerResult, error) { return s.handleDidDate(p1, p2), nil },
		func() (*handlerResult, error) { return s.handleDidYearDate(s.DefaultDistrict, p1, p2) },
		func() (*handlerResult, error) { return s.handleDidYear(p1, p2), nil },
	)
}

// handle3ParamsJSON serves /P1/P2/P3.json via its three-way fallback.
//
// Unlike handle3Params, this chain has no handleDidYearDate branch, so a
// request shaped like a district/year/date triple with a mismatched year
// (e.g. tms/2020/20210101.json) falls through every alternative and
// yields a plain 404 rather than the 400 the same mismatched
// district/year/date triple produces in handle3Params. The original route table this mirrors omits
// that branch too, so this keeps parity with it rather than special-casing
// the .json suffix.
func (s *Server) handle3ParamsJSON(p1, p2, p3 string) (*handlerResult, error) {
	return firstOf(
		func() (*handlerResult, error) { return s.handleDidDateSidExt(p1, p2, p3, outputJSON), nil },
		func() (*handlerResult, error) { return s.handleDidDateSid(p1, p2, p3), nil },
		func() (*handlerResult, error) {
			return s.handleDidYearDateSidExt(s.DefaultDistrict, p1, p2, p3, outputJSON)
		},
	)
}

// handle3Params serves /P1/P2/P3 via its three-way fallback.
func (s *Server) handle3Params(p1, p2, p3 string) (*handlerResult, error) {
	return firstOf(
		func() (*handlerResult, error) { return s.handleDidDateSidExt(p1, p2, p3, outputBinary), nil },
		func() (*handlerResult, error) {
			return s.handleDidYearDateSidExt(s.DefaultDistrict, p1, p2, p3, outputBinary)
		},
		func() (*handlerResult, error) { return s.handleDidYearDate(p1, p2, p3) },
	)
}

func (s *Server) handleMetroFullXML(date string) *handlerResult {
	data, ok := s.Config.RawXML(date)
	if !ok {
		return nil
	}
	return xmlResult(data)
}

func (s *Server) handleMetroFullJSON(date string) *handlerResult {
	data, ok := s.Config.FullJSON(date)
	if !ok {
		return nil
	}
	return jsonResult(data)
}

func (s *Server) handleMetroCorridorXML(date, route, dir string) *handlerResult {
	data, ok := s.Config.CorridorXML(date, route, dir)
	if !ok {
		return nil
	}
	return xmlResult(data)
}

func (s *Server) handleMetroCorridorJSON(date, route, dir string) *handlerResult {
	data, ok := s.Config.CorridorJSON(date, route, dir)
	if !ok {
		return nil
	}
	return jsonResult(data)
}

func (s *Server) handleMetroCorridors(date string) *handlerResult {
	return listJSONResult(s.Config.CorridorList(date))
}

// splitSidExt splits "sid.ext" on the first '.', matching the source's
// splitn(2, '.') behavior.
func splitSidExt(sidExt string) (sid, ext string, ok bool) {
	parts := strings.SplitN(sidExt, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// splitRouteDir splits "route_dir" on the first '_', matching the
// actix route pattern "{route}_{dir}" used in the corridor URL grammar.
func splitRouteDir(routeDir string) (route, dir string, ok bool) {
	parts := strings.SplitN(routeDir, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
