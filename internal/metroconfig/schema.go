// Package metroconfig parses gzip-compressed IRIS metro_config XML
// snapshots, applies DTD-style attribute defaults, and projects the
// result (or a single corridor subtree) to JSON.
package metroconfig

import "encoding/xml"

// TmsConfig is the root of a metro_config snapshot.
type TmsConfig struct {
	XMLName    xml.Name    `xml:"tms_config" json:"-"`
	Corridor   []Corridor  `xml:"corridor" json:"corridor"`
	Camera     []Camera    `xml:"camera" json:"camera"`
	Commlink   []Commlink  `xml:"commlink" json:"commlink"`
	Controller []Controller `xml:"controller" json:"controller"`
	Dms        []Dms       `xml:"dms" json:"dms"`
	TimeStamp  string      `xml:"time_stamp,attr" json:"time_stamp"`
}

// Corridor is a named route/direction pair holding an ordered sequence of
// r-nodes.
type Corridor struct {
	XMLName xml.Name `xml:"corridor" json:"-"`
	RNode   []RNode  `xml:"r_node" json:"r_node"`
	Route   string   `xml:"route,attr" json:"route"`
	Dir     string   `xml:"dir,attr" json:"dir"`
}

// RNode is a roadway node within a corridor, holding detectors and
// meters. station_id and forks are implied attributes: omitted from JSON
// when the source XML did not carry them.
type RNode struct {
	XMLName     xml.Name  `xml:"r_node" json:"-"`
	Detector    []Detector `xml:"detector" json:"detector"`
	Meter       []Meter   `xml:"meter" json:"meter"`
	Name        string    `xml:"name,attr" json:"name"`
	NType       *string   `xml:"n_type,attr" json:"n_type"`
	Pickable    *string   `xml:"pickable,attr" json:"pickable"`
	Above       *string   `xml:"above,attr" json:"above"`
	Transition  *string   `xml:"transition,attr" json:"transition"`
	StationID   *string   `xml:"station_id,attr" json:"station_id,omitempty"`
	Label       *string   `xml:"label,attr" json:"label"`
	Lon         *string   `xml:"lon,attr" json:"lon"`
	Lat         *string   `xml:"lat,attr" json:"lat"`
	Lanes       *string   `xml:"lanes,attr" json:"lanes"`
	AttachSide  *string   `xml:"attach_side,attr" json:"attach_side"`
	Shift       *string   `xml:"shift,attr" json:"shift"`
	Active      *string   `xml:"active,attr" json:"active"`
	Abandoned   *string   `xml:"abandoned,attr" json:"abandoned"`
	SLimit      *string   `xml:"s_limit,attr" json:"s_limit"`
	Forks       *string   `xml:"forks,attr" json:"forks,omitempty"`
}

// Detector is a single lane sensor attached to an r-node. controller is
// an implied attribute.
type Detector struct {
	XMLName    xml.Name `xml:"detector" json:"-"`
	Name       string   `xml:"name,attr" json:"name"`
	Label      *string  `xml:"label,attr" json:"label"`
	Abandoned  *string  `xml:"abandoned,attr" json:"abandoned"`
	Category   *string  `xml:"category,attr" json:"category"`
	Lane       *string  `xml:"lane,attr" json:"lane"`
	Field      *string  `xml:"field,attr" json:"field"`
	Controller *string  `xml:"controller,attr" json:"controller,omitempty"`
}

// Meter is a ramp meter attached to an r-node. lon and lat are implied
// attributes.
type Meter struct {
	XMLName xml.Name `xml:"meter" json:"-"`
	Name    string   `xml:"name,attr" json:"name"`
	Lon     *string  `xml:"lon,attr" json:"lon,omitempty"`
	Lat     *string  `xml:"lat,attr" json:"lat,omitempty"`
	Storage *string  `xml:"storage,attr" json:"storage"`
	MaxWait *string  `xml:"max_wait,attr" json:"max_wait"`
}

// Camera is a traffic camera. lon and lat are implied attributes.
type Camera struct {
	XMLName     xml.Name `xml:"camera" json:"-"`
	Name        string   `xml:"name,attr" json:"name"`
	Description *string  `xml:"description,attr" json:"description"`
	Lon         *string  `xml:"lon,attr" json:"lon,omitempty"`
	Lat         *string  `xml:"lat,attr" json:"lat,omitempty"`
}

// Commlink is a field communications link.
type Commlink struct {
	XMLName     xml.Name `xml:"commlink" json:"-"`
	Name        string   `xml:"name,attr" json:"name"`
	Description *string  `xml:"description,attr" json:"description"`
	Protocol    *string  `xml:"protocol,attr" json:"protocol"`
}

// Controller is a field device controller. commlink, lon, lat, cabinet,
// and notes are implied attributes.
type Controller struct {
	XMLName   xml.Name `xml:"controller" json:"-"`
	Name      string   `xml:"name,attr" json:"name"`
	Condition *string  `xml:"condition,attr" json:"condition"`
	Drop      *string  `xml:"drop,attr" json:"drop"`
	Commlink  *string  `xml:"commlink,attr" json:"commlink,omitempty"`
	Lon       *string  `xml:"lon,attr" json:"lon,omitempty"`
	Lat       *string  `xml:"lat,attr" json:"lat,omitempty"`
	Location  *string  `xml:"location,attr" json:"location"`
	Cabinet   *string  `xml:"cabinet,attr" json:"cabinet,omitempty"`
	Notes     *string  `xml:"notes,attr" json:"notes,omitempty"`
}

// Dms is a dynamic message sign. lon, lat, width_pixels, and
// height_pixels are implied attributes.
type Dms struct {
	XMLName      xml.Name `xml:"dms" json:"-"`
	Name         string   `xml:"name,attr" json:"name"`
	Description  *string  `xml:"description,attr" json:"description"`
	Lon          *string  `xml:"lon,attr" json:"lon,omitempty"`
	Lat          *string  `xml:"lat,attr" json:"lat,omitempty"`
	WidthPixels  *string  `xml:"width_pixels,attr" json:"width_pixels,omitempty"`
	HeightPixels *string  `xml:"height_pixels,attr" json:"height_pixels,omitempty"`
}

func strp(s string) *string { return &s }

// RequiredFieldsPresent reports whether every non-defaulted, non-implied
// attribute modeled as *string in the config and its nested elements was
// present in the source XML. An absent one is a transform failure. The
// name, route, dir and time_stamp attributes are plain strings and are
// not checked: an absent one unmarshals as "".
func (c *TmsConfig) RequiredFieldsPresent() bool {
	for i := range c.Corridor {
		if !c.Corridor[i].RequiredFieldsPresent() {
			return false
		}
	}
	for i := range c.Camera {
		if !c.Camera[i].RequiredFieldsPresent() {
			return false
		}
	}
	for i := range c.Commlink {
		if !c.Commlink[i].RequiredFieldsPresent() {
			return false
		}
	}
	for i := range c.Controller {
		if !c.Controller[i].RequiredFieldsPresent() {
			return false
		}
	}
	for i := range c.Dms {
		if !c.Dms[i].RequiredFieldsPresent() {
			return false
		}
	}
	return true
}

// RequiredFieldsPresent reports whether every r-node in the corridor (and
// their nested meters) carries its required attributes.
func (c *Corridor) RequiredFieldsPresent() bool {
	for i := range c.RNode {
		if !c.RNode[i].RequiredFieldsPresent() {
			return false
		}
	}
	return true
}

// RequiredFieldsPresent reports whether lon, lat, and every meter's
// storage attribute were present in the source XML.
func (n *RNode) RequiredFieldsPresent() bool {
	if n.Lon == nil || n.Lat == nil {
		return false
	}
	for i := range n.Meter {
		if !n.Meter[i].RequiredFieldsPresent() {
			return false
		}
	}
	return true
}

// RequiredFieldsPresent reports whether storage was present in the
// source XML.
func (m *Meter) RequiredFieldsPresent() bool {
	return m.Storage != nil
}

// RequiredFieldsPresent reports whether description was present in the
// source XML.
func (c *Camera) RequiredFieldsPresent() bool {
	return c.Description != nil
}

// RequiredFieldsPresent reports whether description and protocol were
// present in the source XML.
func (c *Commlink) RequiredFieldsPresent() bool {
	return c.Description != nil && c.Protocol != nil
}

// RequiredFieldsPresent reports whether condition, drop, and location
// were present in the source XML.
func (c *Controller) RequiredFieldsPresent() bool {
	return c.Condition != nil && c.Drop != nil && c.Location != nil
}

// RequiredFieldsPresent reports whether description was present in the
// source XML.
func (d *Dms) RequiredFieldsPresent() bool {
	return d.Description != nil
}

// ApplyDefaults fills every DTD-default attribute left nil by XML
// unmarshaling (i.e. absent from the source document) with its default
// value. Implied attributes (no default) are left untouched so they
// continue to be omitted from JSON.
func (c *TmsConfig) ApplyDefaults() {
	for i := range c.Corridor {
		c.Corridor[i].ApplyDefaults()
	}
}

// ApplyDefaults fills defaults on the corridor's r-nodes.
func (c *Corridor) ApplyDefaults() {
	for i := range c.RNode {
		c.RNode[i].ApplyDefaults()
	}
}

// ApplyDefaults fills r-node and nested detector/meter defaults.
func (n *RNode) ApplyDefaults() {
	if n.NType == nil {
		n.NType = strp("Station")
	}
	if n.Pickable == nil {
		n.Pickable = strp("f")
	}
	if n.Above == nil {
		n.Above = strp("f")
	}
	if n.Transition == nil {
		n.Transition = strp("None")
	}
	if n.Label == nil {
		n.Label = strp("")
	}
	if n.Lanes == nil {
		n.Lanes = strp("0")
	}
	if n.AttachSide == nil {
		n.AttachSide = strp("right")
	}
	if n.Shift == nil {
		n.Shift = strp("0")
	}
	if n.Active == nil {
		n.Active = strp("t")
	}
	if n.Abandoned == nil {
		n.Abandoned = strp("f")
	}
	if n.SLimit == nil {
		n.SLimit = strp("55")
	}
	for i := range n.Detector {
		n.Detector[i].ApplyDefaults()
	}
	for i := range n.Meter {
		n.Meter[i].ApplyDefaults()
	}
}

// ApplyDefaults fills detector defaults.
func (d *Detector) ApplyDefaults() {
	if d.Label == nil {
		d.Label = strp("FUTURE")
	}
	if d.Abandoned == nil {
		d.Abandoned = strp("f")
	}
	if d.Category == nil {
		d.Category = strp("")
	}
	if d.Lane == nil {
		d.Lane = strp("0")
	}
	if d.Field == nil {
		d.Field = strp("22.0")
	}
}

// ApplyDefaults fills meter defaults.
func (m *Meter) ApplyDefaults() {
	if m.MaxWait == nil {
		m.MaxWait = strp("240")
	}
}
