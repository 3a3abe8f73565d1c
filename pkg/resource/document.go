package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Keyed is implemented by record types whose id lives in one top-level JSON
// field.
type Keyed interface {
	IDField() string
}

// ErrNotObject is returned when a field edit targets a document that is not
// a JSON object.
var ErrNotObject = errors.New("document is not a JSON object")

// maxExactInt is the largest integer a JSON number holds without loss.
const maxExactInt = 1 << 53

// Document is a record held as the JSON value it was submitted as. Unknown
// fields, absent fields and fields of an unexpected type all survive a round
// trip. K names the id field and provides the typed view.
type Document[K Keyed] struct {
	raw []byte
	id  int
	ok  bool
}

// ParseDocument validates data as JSON and reads the id field of K. A
// missing or non-integer id yields a document no lookup matches.
func ParseDocument[K Keyed](data []byte) (Document[K], error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return Document[K]{}, err
	}
	var k K
	d := Document[K]{raw: buf.Bytes()}
	d.id, d.ok = extractID(d.raw, k.IDField())
	return d, nil
}

// NewDocument encodes v.
func NewDocument[K Keyed](v K) (Document[K], error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Document[K]{}, fmt.Errorf("encode %T: %w", v, err)
	}
	return ParseDocument[K](raw)
}

// Documents encodes every record of vs.
func Documents[K Keyed](vs []K) ([]Document[K], error) {
	out := make([]Document[K], 0, len(vs))
	for _, v := range vs {
		d, err := NewDocument(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// MustDocuments is like Documents but panics on error. It is meant for fixed
// seed data.
func MustDocuments[K Keyed](vs []K) []Document[K] {
	out, err := Documents(vs)
	if err != nil {
		panic(err)
	}
	return out
}

// RecordID implements Record.
func (d Document[K]) RecordID() (int, bool) { return d.id, d.ok }

// Bytes returns the compact JSON text of the document.
func (d Document[K]) Bytes() []byte { return d.raw }

// MarshalJSON writes the stored JSON unchanged.
func (d Document[K]) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return []byte("null"), nil
	}
	return d.raw, nil
}

// UnmarshalJSON keeps data as the document body.
func (d *Document[K]) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDocument[K](data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Typed decodes the document into K. Fields whose JSON type does not fit K
// are left at their zero value.
func (d Document[K]) Typed() K {
	var v K
	_ = json.Unmarshal(d.raw, &v)
	return v
}

// Field returns the raw value of a top-level field. Like JSON.parse, the last
// of duplicated keys wins.
func (d Document[K]) Field(name string) (json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(d.raw, &fields); err != nil {
		return nil, false
	}
	v, ok := fields[name]
	return v, ok
}

// With returns a copy of d with the top-level field name set to value. An
// existing field keeps its position, a new one is appended and a nil value
// removes the field.
func (d Document[K]) With(name string, value json.RawMessage) (Document[K], error) {
	members, err := objectMembers(d.raw)
	if err != nil {
		return d, err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	written := false
	add := func(key string, v json.RawMessage) {
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	for _, m := range members {
		if m.key != name {
			add(m.key, m.value)
			continue
		}
		if value != nil && !written {
			add(name, value)
			written = true
		}
	}
	if value != nil && !written {
		add(name, value)
	}
	b.WriteByte('}')
	return ParseDocument[K](b.Bytes())
}

type member struct {
	key   string
	value json.RawMessage
}

// objectMembers lists the fields of a JSON object in document order.
func objectMembers(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}
	var out []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, member{key: key, value: v})
	}
	return out, nil
}

// extractID reads field from a JSON object. Only JSON numbers with an
// integral value count; a quoted "3" is not the id 3.
func extractID(raw []byte, field string) (int, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return 0, false
	}
	v, ok := fields[field]
	if !ok || len(v) == 0 || (v[0] != '-' && (v[0] < '0' || v[0] > '9')) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, false
	}
	return int(f), true
}
