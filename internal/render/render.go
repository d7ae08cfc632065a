package render

import "encoding/json"

// Format and content type constants.
const (
	// FormatXML is the only format value that selects XML. Every other
	// value, including absent, falls back to JSON.
	FormatXML = "xml"

	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// Render serializes the payload in the requested format and returns
// the body together with its content type. rootTag names the XML root
// element; itemTag wraps each entry of a record sequence.
func Render(format string, payload Payload, rootTag, itemTag string) ([]byte, string, error) {
	if format == FormatXML {
		body, err := renderXML(payload, rootTag, itemTag)
		return body, ContentTypeXML, err
	}
	body, err := renderJSON(payload)
	return body, ContentTypeJSON, err
}

func renderJSON(p Payload) ([]byte, error) {
	switch p.kind {
	case kindRecords:
		if p.records == nil {
			// An empty report is an empty JSON array, not null.
			return json.Marshal([]Record{})
		}
		return json.Marshal(p.records)
	case kindObject:
		return json.Marshal(p.object)
	default:
		return json.Marshal(p.text)
	}
}
