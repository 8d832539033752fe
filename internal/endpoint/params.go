package endpoint

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an insertion-ordered set of query parameters.
//
// Assigning an existing key replaces its value in place. Renaming removes the
// key and appends the value at the end under the new name, so a renamed key
// always encodes after every key that was present before the rename.
type Params struct {
	items []Param
}

// Set assigns value to key, keeping the key's position when it already exists.
func (p *Params) Set(key, value string) {
	for i := range p.items {
		if p.items[i].Key == key {
			p.items[i].Value = value
			return
		}
	}
	p.items = append(p.items, Param{Key: key, Value: value})
}

// SetInt assigns an integer value to key.
func (p *Params) SetInt(key string, value int) {
	p.Set(key, strconv.Itoa(value))
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (string, bool) {
	for _, it := range p.items {
		if it.Key == key {
			return it.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Del removes key and returns the value it held.
func (p *Params) Del(key string) (string, bool) {
	for i, it := range p.items {
		if it.Key == key {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return it.Value, true
		}
	}
	return "", false
}

// Rename moves the value stored under from to the key to. It is a no-op when
// from is absent.
func (p *Params) Rename(from, to string) {
	if v, ok := p.Del(from); ok {
		p.Set(to, v)
	}
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.items))
	for _, it := range p.items {
		keys = append(keys, it.Key)
	}
	return keys
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.items) }

// Encode renders the parameters as a form-encoded query string in insertion
// order. url.Values is not used because it sorts keys.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, it := range p.items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(it.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(it.Value))
	}
	return b.String()
}
