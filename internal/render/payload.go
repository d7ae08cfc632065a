// Package render converts report rows into JSON or XML response bodies
// sharing an identical two-level shape.
package render

import (
	"bytes"
	"encoding/json"
)

// Field is a single named value inside a record.
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered list of fields. Order matters: XML leaf
// elements and JSON object keys are emitted in the order the record
// was built.
type Record []Field

// MarshalJSON emits the fields as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type payloadKind int

const (
	kindRecords payloadKind = iota
	kindObject
	kindText
)

// Payload is the projector input: a sequence of records, a single
// record, or a bare string. The discriminant is explicit so the
// serializers never inspect types at runtime.
type Payload struct {
	kind    payloadKind
	records []Record
	object  Record
	text    string
}

// Records wraps a record sequence.
func Records(records []Record) Payload {
	return Payload{kind: kindRecords, records: records}
}

// Object wraps a single record.
func Object(record Record) Payload {
	return Payload{kind: kindObject, object: record}
}

// Text wraps a bare string, used for error bodies.
func Text(text string) Payload {
	return Payload{kind: kindText, text: text}
}
