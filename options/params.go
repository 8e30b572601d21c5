// Package options resolves the raw key/value parameters of the Athena data
// source into a validated configuration and the property sets handed to the
// downstream JDBC driver.
package options

import (
	"sort"
	"strings"
)

// Property is a single key/value pair in its original casing.
type Property struct {
	Key   string
	Value string
}

// Params is an immutable, case-insensitive view over the raw data source
// parameters. Lookups normalize keys through a lowercased index while
// iteration preserves the original casing.
type Params struct {
	pairs []Property
	index map[string]int
}

// NewParams builds Params from a plain map. Pairs are ordered by their
// original key so that iteration is deterministic.
func NewParams(m map[string]string) *Params {
	pairs := make([]Property, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Property{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return ParamsFromPairs(pairs)
}

// ParamsFromPairs builds Params from an ordered pair list, preserving the
// caller's order. When two keys collide case-insensitively the later pair
// wins, keeping the earlier pair's position.
func ParamsFromPairs(pairs []Property) *Params {
	p := &Params{
		pairs: make([]Property, 0, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}
	for _, pair := range pairs {
		p.set(pair.Key, pair.Value)
	}
	return p
}

// ParamsWithTable builds Params from a map merged with explicit url and table
// arguments. The explicit arguments override same-named map entries; an empty
// argument leaves the map entry untouched.
func ParamsWithTable(url, table string, m map[string]string) *Params {
	p := NewParams(m)
	if url != "" {
		p.set(OptURL, url)
	}
	if table != "" {
		p.set(OptTable, table)
	}
	return p
}

func (p *Params) set(key, value string) {
	lower := strings.ToLower(key)
	if i, ok := p.index[lower]; ok {
		p.pairs[i] = Property{Key: key, Value: value}
		return
	}
	p.index[lower] = len(p.pairs)
	p.pairs = append(p.pairs, Property{Key: key, Value: value})
}

// Get returns the value for key, matching case-insensitively.
func (p *Params) Get(key string) (string, bool) {
	i, ok := p.index[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return p.pairs[i].Value, true
}

// Pairs returns a copy of every pair in original casing and stored order.
func (p *Params) Pairs() []Property {
	out := make([]Property, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.pairs)
}
