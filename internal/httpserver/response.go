package httpserver

import (
	"sort"
	"strconv"
	"strings"
)

// handlerResult is the body and content type a handler wants written to
// the client. A nil *handlerResult (with no error) means "undefined" —
// the dispatcher tries the next fallback, or serves 404 if none remain.
type handlerResult struct {
	body        []byte
	contentType string
}

func textResult(body string) *handlerResult {
	return &handlerResult{body: []byte(body), contentType: "text/plain"}
}

func jsonResult(body []byte) *handlerResult {
	return &handlerResult{body: body, contentType: "application/json"}
}

func xmlResult(body []byte) *handlerResult {
	return &handlerResult{body: body, contentType: "application/xml"}
}

func binaryResult(body []byte) *handlerResult {
	return &handlerResult{body: body, contentType: "application/octet_stream"}
}

// listJSONResult builds a List JSON result from items: "[" then each item
// quoted and comma-separated then "]". An empty sequence yields nil — the
// caller must treat that as undefined (404), not "[]".
func listJSONResult(items []string) *handlerResult {
	if len(items) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(item)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return jsonResult([]byte(b.String()))
}

// byteArrayJSON renders raw sample bytes as a JSON array of quoted
// decimal byte values ("0".."255"), matching the archive's JSON sample
// output mode. An empty slice yields nil (undefined).
func byteArrayJSON(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strconv.Itoa(int(v)))
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return []byte(b.String())
}

// dateListText sorts dates ascending and concatenates them with trailing
// newlines, or returns ("", false) if dates is empty.
func dateListText(dates []string) (string, bool) {
	if len(dates) == 0 {
		return "", false
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)
	var b strings.Builder
	for _, d := range sorted {
		b.WriteString(d)
		b.WriteByte('\n')
	}
	return b.String(), true
}
