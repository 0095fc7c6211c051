package metroconfig

import "encoding/xml"

// parseConfig parses a full metro_config document, applies DTD defaults,
// and fails if any required (non-defaulted, non-implied) attribute is
// absent from the source XML.
func parseConfig(xmlDoc []byte) (*TmsConfig, bool) {
	var cfg TmsConfig
	if err := xml.Unmarshal(xmlDoc, &cfg); err != nil {
		return nil, false
	}
	cfg.ApplyDefaults()
	if !cfg.RequiredFieldsPresent() {
		return nil, false
	}
	return &cfg, true
}

// parseCorridor parses a single corridor subtree, applies DTD defaults,
// and fails if any required attribute is absent from the source XML.
func parseCorridor(xmlDoc []byte) (*Corridor, bool) {
	var cor Corridor
	if err := xml.Unmarshal(xmlDoc, &cor); err != nil {
		return nil, false
	}
	cor.ApplyDefaults()
	if !cor.RequiredFieldsPresent() {
		return nil, false
	}
	return &cor, true
}
