package metroconfig

import (
	"encoding/json"

	"github.com/mnit-rtmc/trafdat/internal/archive"
)

// Store resolves dated metro_config snapshots against a config root on
// disk. A Store holds no mutable state between calls.
type Store struct {
	Root string
}

// NewStore returns a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{Root: root}
}

// RawXML returns the full decompressed XML snapshot for date.
func (s *Store) RawXML(date string) ([]byte, bool) {
	if !archive.IsValidDate(date) {
		return nil, false
	}
	return readXMLFile(s.Root, date)
}

// FullJSON returns the full snapshot for date, parsed and projected to
// JSON with DTD defaults applied and implied-absent attributes omitted.
func (s *Store) FullJSON(date string) ([]byte, bool) {
	xmlDoc, ok := s.RawXML(date)
	if !ok {
		return nil, false
	}
	cfg, ok := parseConfig(xmlDoc)
	if !ok {
		return nil, false
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, false
	}
	return data, true
}

// CorridorXML returns the serialized XML of the unique corridor matching
// route and dir on date.
func (s *Store) CorridorXML(date, route, dir string) ([]byte, bool) {
	xmlDoc, ok := s.RawXML(date)
	if !ok {
		return nil, false
	}
	return findCorridorXML(xmlDoc, route, dir)
}

// CorridorJSON returns the JSON projection of the unique corridor
// matching route and dir on date.
func (s *Store) CorridorJSON(date, route, dir string) ([]byte, bool) {
	corXML, ok := s.CorridorXML(date, route, dir)
	if !ok {
		return nil, false
	}
	cor, ok := parseCorridor(corXML)
	if !ok {
		return nil, false
	}
	data, err := json.Marshal(cor)
	if err != nil {
		return nil, false
	}
	return data, true
}

// CorridorList returns the "<route>_<dir>" identifiers of every corridor
// present in date's snapshot, in document order.
func (s *Store) CorridorList(date string) []string {
	xmlDoc, ok := s.RawXML(date)
	if !ok {
		return nil
	}
	cfg, ok := parseConfig(xmlDoc)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(cfg.Corridor))
	for _, c := range cfg.Corridor {
		ids = append(ids, c.Route+"_"+c.Dir)
	}
	return ids
}
