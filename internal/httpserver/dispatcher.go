package httpserver

import "strings"

// dispatch resolves a request path (already relative to the server's
// mount point, with no leading slash) into a handlerResult by walking
// the route table below. The shape mirrors the original scope's route
// list: a literal match for the landing page, stylesheet and district
// index, then length- and prefix-dispatched fallback chains for the
// sensor and metro_config families.
func (s *Server) dispatch(path string) (*handlerResult, error) {
	path = strings.Trim(path, "/")
	if path == "" || path == "index.html" {
		return s.handleLandingPage(), nil
	}
	if path == "trafdat.css" {
		return s.handleStylesheet(), nil
	}

	segments := strings.Split(path, "/")

	switch len(segments) {
	case 1:
		if segments[0] == "districts" {
			return s.handleDistricts(), nil
		}
		return s.handle1Param(segments[0]), nil

	case 2:
		if segments[0] == "metro_config" {
			return s.dispatchMetroConfig2(segments[1]), nil
		}
		p1, p2 := segments[0], segments[1]
		if stem, ok := stripSuffix(p2, ".json"); ok {
			return s.handle2ParamsJSON(p1, stem), nil
		}
		return s.handle2Params(p1, p2)

	case 3:
		if segments[0] == "metro_config" {
			return s.dispatchMetroConfig3(segments[1], segments[2]), nil
		}
		p1, p2, p3 := segments[0], segments[1], segments[2]
		if stem, ok := stripSuffix(p3, ".json"); ok {
			return s.handle3ParamsJSON(p1, p2, stem)
		}
		return s.handle3Params(p1, p2, p3)
	}

	return nil, nil
}

func (s *Server) dispatchMetroConfig2(p1 string) *handlerResult {
	if stem, ok := stripSuffix(p1, ".json"); ok {
		return s.handleMetroFullJSON(stem)
	}
	if stem, ok := stripSuffix(p1, ".xml"); ok {
		return s.handleMetroFullXML(stem)
	}
	return nil
}

func (s *Server) dispatchMetroConfig3(date, p3 string) *handlerResult {
	if p3 == "corridors" {
		return s.handleMetroCorridors(date)
	}
	if stem, ok := stripSuffix(p3, ".json"); ok {
		if route, dir, ok := splitRouteDir(stem); ok {
			return s.handleMetroCorridorJSON(date, route, dir)
		}
		return nil
	}
	if stem, ok := stripSuffix(p3, ".xml"); ok {
		if route, dir, ok := splitRouteDir(stem); ok {
			return s.handleMetroCorridorXML(date, route, dir)
		}
		return nil
	}
	return nil
}

func stripSuffix(s, suffix string) (string, bool) {
	if !strings.HasSuffix(s, suffix) {
		return "", false
	}
	stem := strings.TrimSuffix(s, suffix)
	if stem == "" {
		return "", false
	}
	return stem, true
}
