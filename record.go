package emojidata

import (
	"bytes"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"unicode/utf8"
)

// Field is a single top level member of an emoji record. Raw holds the
// value as normalized compact JSON.
type Field struct {
	Key string
	Raw string
}

// Record is an emoji record with its fields in source order.
type Record struct {
	Fields []Field
}

func newRecordFromJSON(obj gjson.Result) *Record {
	r := &Record{Fields: make([]Field, 0, 32)}
	obj.ForEach(func(k, v gjson.Result) bool {
		r.SetRaw(k.String(), normalizedRaw(v))
		return true
	})

	return r
}

func (r *Record) Len() int {
	return len(r.Fields)
}

func (r *Record) Has(key string) bool {
	return r.indexOf(key) != -1
}

// Get returns the parsed value of a field. Missing fields give
// a result for which Exists is false.
func (r *Record) Get(key string) gjson.Result {
	idx := r.indexOf(key)
	if idx == -1 {
		return gjson.Result{}
	}

	return gjson.Parse(r.Fields[idx].Raw)
}

// SetRaw replaces the value of an existing field in place or
// appends a new field at the end.
func (r *Record) SetRaw(key, raw string) {
	if idx := r.indexOf(key); idx != -1 {
		r.Fields[idx].Raw = raw
		return
	}

	r.Fields = append(r.Fields, Field{Key: key, Raw: raw})
}

func (r *Record) SetString(key, value string) error {
	if !utf8.ValidString(value) {
		return errors.Errorf("field %s is not valid utf-8", key)
	}

	r.SetRaw(key, quoteJSON(value))
	return nil
}

// Delete removes the named fields and reports how many were present.
func (r *Record) Delete(keys ...string) int {
	var removed int
	for _, k := range keys {
		if idx := r.indexOf(k); idx != -1 {
			r.Fields = append(r.Fields[:idx], r.Fields[idx+1:]...)
			removed++
		}
	}

	return removed
}

func (r *Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i := range r.Fields {
		keys[i] = r.Fields[i].Key
	}

	return keys
}

func (r *Record) Clone() *Record {
	var cp Record
	if err := copier.CopyWithOption(&cp, r, copier.Option{DeepCopy: true}); err != nil {
		panic("could not copy record " + err.Error())
	}

	return &cp
}

// MarshalJSON writes the record as a compact JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString(quoteJSON(f.Key))
		buf.WriteByte(':')
		buf.WriteString(f.Raw)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r *Record) indexOf(key string) int {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			return i
		}
	}

	return -1
}
