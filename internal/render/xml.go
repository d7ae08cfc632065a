package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// xmlDeclaration matches the declaration the API has always emitted.
const xmlDeclaration = "<?xml version='1.0' encoding='utf-8'?>\n"

func renderXML(p Payload, rootTag, itemTag string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)

	var err error
	switch p.kind {
	case kindRecords:
		err = writeRecords(&buf, rootTag, itemTag, p.records)
	case kindObject:
		err = writeRecord(&buf, rootTag, p.object)
	default:
		err = writeTextElement(&buf, rootTag, p.text)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build xml: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRecords(buf *bytes.Buffer, rootTag, itemTag string, records []Record) error {
	if len(records) == 0 {
		writeEmptyElement(buf, rootTag)
		return nil
	}

	writeOpenTag(buf, rootTag)
	for _, rec := range records {
		if err := writeRecord(buf, itemTag, rec); err != nil {
			return err
		}
	}
	writeCloseTag(buf, rootTag)
	return nil
}

func writeRecord(buf *bytes.Buffer, tag string, rec Record) error {
	if len(rec) == 0 {
		writeEmptyElement(buf, tag)
		return nil
	}

	writeOpenTag(buf, tag)
	for _, f := range rec {
		if err := writeTextElement(buf, f.Name, fieldText(f.Value)); err != nil {
			return err
		}
	}
	writeCloseTag(buf, tag)
	return nil
}

func writeTextElement(buf *bytes.Buffer, tag, text string) error {
	if text == "" {
		writeEmptyElement(buf, tag)
		return nil
	}

	writeOpenTag(buf, tag)
	if err := xml.EscapeText(buf, []byte(text)); err != nil {
		return err
	}
	writeCloseTag(buf, tag)
	return nil
}

func writeOpenTag(buf *bytes.Buffer, tag string) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteByte('>')
}

func writeCloseTag(buf *bytes.Buffer, tag string) {
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

func writeEmptyElement(buf *bytes.Buffer, tag string) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteString(" />")
}

// fieldText converts a field value to its element text.
func fieldText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
