package metroconfig

import "github.com/beevik/etree"

// findCorridorXML selects the unique corridor element matching both route
// and dir from xmlDoc via an XPath-equivalent predicate, and returns its
// serialized XML, or (nil, false) if no corridor matches.
func findCorridorXML(xmlDoc []byte, route, dir string) ([]byte, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlDoc); err != nil {
		return nil, false
	}

	path := "//corridor[@route='" + route + "'][@dir='" + dir + "']"
	elems := doc.FindElements(path)
	if len(elems) == 0 {
		return nil, false
	}

	out := etree.NewDocument()
	out.SetRoot(elems[0].Copy())
	data, err := out.WriteToBytes()
	if err != nil {
		return nil, false
	}
	return data, true
}
