// Package valuetree is a small document model for building JSON output
// bottom-up with deterministic serialization.
//
// A Node is one of String, Number, *Object or *Array. Object keys always
// serialize in lexicographic order so identical trees always produce
// identical text, regardless of insertion order.
package valuetree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrDuplicateKey is returned by Object.Add when the key is already present.
var ErrDuplicateKey = errors.New("valuetree: duplicate object key")

// Node is a value in the tree.
type Node interface {
	write(w *strings.Builder)
}

// String is a string leaf.
type String string

// Number is a numeric leaf.
type Number float64

// Int is a convenience constructor for integral numbers.
func Int(i int) Number {
	return Number(i)
}

// Object maps string keys to nodes.
type Object struct {
	fields map[string]Node
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Node)}
}

// Add inserts a field. Existing keys are never overwritten.
func (o *Object) Add(key string, n Node) error {
	if _, ok := o.fields[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	o.fields[key] = n
	return nil
}

// MustAdd is Add for objects whose keys are fixed in code. It panics on a
// duplicate key.
func (o *Object) MustAdd(key string, n Node) *Object {
	if err := o.Add(key, n); err != nil {
		panic(err)
	}
	return o
}

// Get returns the field stored under key.
func (o *Object) Get(key string) (Node, bool) {
	n, ok := o.fields[key]
	return n, ok
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Keys returns the field names in serialization order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Array is an ordered list of nodes.
type Array struct {
	items []Node
}

// NewArray returns an empty array.
func NewArray() *Array {
	return &Array{}
}

// Append adds n to the end of the array.
func (a *Array) Append(n Node) *Array {
	a.items = append(a.items, n)
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the i'th element.
func (a *Array) At(i int) Node {
	return a.items[i]
}

// Serialize renders n as compact JSON text.
func Serialize(n Node) string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

// Write serializes n to w.
func Write(w io.Writer, n Node) error {
	_, err := io.WriteString(w, Serialize(n))
	return err
}

func (s String) write(sb *strings.Builder) {
	// encoding/json never fails on a plain string
	b, _ := json.Marshal(string(s))
	sb.Write(b)
}

func (n Number) write(sb *strings.Builder) {
	sb.WriteString(strconv.FormatFloat(float64(n), 'f', -1, 64))
}

func (o *Object) write(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		String(k).write(sb)
		sb.WriteByte(':')
		o.fields[k].write(sb)
	}
	sb.WriteByte('}')
}

func (a *Array) write(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, n := range a.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		n.write(sb)
	}
	sb.WriteByte(']')
}
