package render

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{
			{Name: "name", Value: "Sebastian"},
			{Name: "surname", Value: "Vettel"},
			{Name: "team", Value: "FERRARI"},
			{Name: "lap_time", Value: "1:04.415"},
			{Name: "place", Value: 1},
		},
		{
			{Name: "name", Value: "Lewis"},
			{Name: "surname", Value: "Hamilton"},
			{Name: "team", Value: "MERCEDES"},
			{Name: "lap_time", Value: "1:13.907"},
			{Name: "place", Value: 2},
		},
	}
}

func TestRenderJSONKeepsFieldOrder(t *testing.T) {
	body, contentType, err := Render("", Records(sampleRecords()), ResponseTag, DriverTag)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJSON, contentType)

	want := `[{"name":"Sebastian","surname":"Vettel","team":"FERRARI","lap_time":"1:04.415","place":1},` +
		`{"name":"Lewis","surname":"Hamilton","team":"MERCEDES","lap_time":"1:13.907","place":2}]`
	assert.Equal(t, want, string(body))
}

func TestRenderJSONEmptySequence(t *testing.T) {
	body, _, err := Render("", Records(nil), ResponseTag, DriverTag)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestRenderJSONObject(t *testing.T) {
	rec := Record{
		{Name: "id", Value: "SVF"},
		{Name: "name", Value: "Sebastian"},
	}
	body, _, err := Render("", Object(rec), DriverTag, "")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"SVF","name":"Sebastian"}`, string(body))
}

func TestRenderXMLSequence(t *testing.T) {
	body, contentType, err := Render(FormatXML, Records(sampleRecords()), ResponseTag, DriverTag)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeXML, contentType)

	s := string(body)
	assert.True(t, strings.HasPrefix(s, "<?xml version='1.0' encoding='utf-8'?>\n"))
	assert.Contains(t, s, "<response><driver><name>Sebastian</name>")
	assert.Contains(t, s, "<place>1</place>")
	assert.True(t, strings.HasSuffix(s, "</driver></response>"))
}

func TestRenderXMLObject(t *testing.T) {
	rec := Record{
		{Name: "id", Value: "SVF"},
		{Name: "lap_time", Value: "1:04.415"},
	}
	body, _, err := Render(FormatXML, Object(rec), DriverTag, "")
	require.NoError(t, err)
	assert.Equal(t,
		"<?xml version='1.0' encoding='utf-8'?>\n<driver><id>SVF</id><lap_time>1:04.415</lap_time></driver>",
		string(body))
}

func TestRenderXMLEmptySequenceAndEmptyText(t *testing.T) {
	body, _, err := Render(FormatXML, Records(nil), ResponseTag, DriverTag)
	require.NoError(t, err)
	assert.Equal(t, "<?xml version='1.0' encoding='utf-8'?>\n<response />", string(body))

	body, _, err = Render(FormatXML, Text(""), errorTag, "")
	require.NoError(t, err)
	assert.Equal(t, "<?xml version='1.0' encoding='utf-8'?>\n<error />", string(body))
}

func TestRenderXMLEscapesText(t *testing.T) {
	rec := Record{{Name: "team", Value: "RED BULL <RACING> & TAG"}}
	body, _, err := Render(FormatXML, Object(rec), DriverTag, "")
	require.NoError(t, err)
	assert.Contains(t, string(body), "<team>RED BULL &lt;RACING&gt; &amp; TAG</team>")
}

// Only the exact value "xml" selects XML output.
func TestRenderFormatSelection(t *testing.T) {
	for _, format := range []string{"", "json", "XML", "Xml", "yaml"} {
		_, contentType, err := Render(format, Text("x"), errorTag, "")
		require.NoError(t, err)
		assert.Equal(t, ContentTypeJSON, contentType, "format %q", format)
	}
}

// Both formats must carry the same field names and values in the same
// order; decode each and compare.
func TestRenderFormatsAgree(t *testing.T) {
	records := sampleRecords()

	jsonBody, _, err := Render("", Records(records), ResponseTag, DriverTag)
	require.NoError(t, err)
	xmlBody, _, err := Render(FormatXML, Records(records), ResponseTag, DriverTag)
	require.NoError(t, err)

	var fromJSON []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(jsonBody))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&fromJSON))

	fromXML := decodeXMLRecords(t, xmlBody, ResponseTag, DriverTag)
	require.Len(t, fromXML, len(fromJSON))

	for i := range fromJSON {
		require.Len(t, fromXML[i], len(fromJSON[i]))
		for name, value := range fromJSON[i] {
			var text string
			if n, ok := value.(json.Number); ok {
				text = n.String()
			} else {
				text = value.(string)
			}
			assert.Equal(t, text, fromXML[i][name])
		}
	}
}

// decodeXMLRecords walks the token stream and rebuilds each item as a
// name-to-text map.
func decodeXMLRecords(t *testing.T, body []byte, rootTag, itemTag string) []map[string]string {
	t.Helper()

	decoder := xml.NewDecoder(bytes.NewReader(body))
	var records []map[string]string
	var current map[string]string

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case rootTag:
			case itemTag:
				current = make(map[string]string)
			default:
				var text string
				require.NoError(t, decoder.DecodeElement(&text, &tok))
				require.NotNil(t, current)
				current[tok.Name.Local] = text
			}
		case xml.EndElement:
			if tok.Name.Local == itemTag && current != nil {
				records = append(records, current)
				current = nil
			}
		}
	}
	return records
}

func TestRenderErrorJSON(t *testing.T) {
	e := DriverNotFound("XXX")
	assert.Equal(t, http.StatusNotFound, e.Status())

	body, contentType, err := RenderError("", e)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJSON, contentType)
	assert.Equal(t, `{"error":"404 Not Found: A driver with the 'XXX' ID  was not found."}`, string(body))
}

func TestRenderErrorXML(t *testing.T) {
	body, contentType, err := RenderError(FormatXML, RouteNotFound())
	require.NoError(t, err)
	assert.Equal(t, ContentTypeXML, contentType)
	assert.Equal(t,
		"<?xml version='1.0' encoding='utf-8'?>\n<error>404 Not Found: The requested URL was not found on the server.</error>",
		string(body))
}

func TestTooManyRequestsError(t *testing.T) {
	e := TooManyRequests()
	assert.Equal(t, http.StatusTooManyRequests, e.Status())

	body, _, err := RenderError("", e)
	require.NoError(t, err)
	assert.Equal(t, `{"error":"429 Too Many Requests: rate limit exceeded."}`, string(body))
}

func TestInternalErrorStatus(t *testing.T) {
	e := Internal()
	assert.Equal(t, http.StatusInternalServerError, e.Status())
	assert.Contains(t, e.Message, "500 Internal Server Error")
}
