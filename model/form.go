package model

import (
	"bytes"
	"encoding/json"
)

// LabelValuePair is one reconstructed form field: a label block's text
// and the text of the block linked to it as its value.
type LabelValuePair struct {
	Label           string  `json:"label"`
	Value           string  `json:"value"`
	LabelConfidence float64 `json:"label_confidence"`

	// ValueConfidence is nil when no associated value block was found.
	ValueConfidence *float64 `json:"value_confidence,omitempty"`
}

// FieldMap is a string map that preserves insertion order, both when
// iterating and when marshaling to JSON. It is not safe for concurrent
// mutation.
type FieldMap struct {
	keys   []string
	values map[string]string
}

// NewFieldMap creates an empty ordered map.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]string)}
}

// Set inserts the key at the end of the order, or updates the value in
// place when the key already exists.
func (m *FieldMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetIfAbsent inserts the key only if it is not already present, and
// reports whether the insert happened. Later duplicates are dropped,
// giving first-occurrence-wins semantics.
func (m *FieldMap) SetIfAbsent(key, value string) bool {
	if _, ok := m.values[key]; ok {
		return false
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

// Get returns the value for a key and whether the key is present.
func (m *FieldMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is
// shared; callers must not modify it.
func (m *FieldMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *FieldMap) Len() int {
	return len(m.keys)
}

// MarshalJSON renders the map as a JSON object with keys in insertion
// order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
