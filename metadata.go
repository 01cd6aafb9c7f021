package unilog

import "sort"

// Metadata maps keys to values attached to a log call or bound to a handler.
type Metadata map[string]Value

// Merge returns a new map holding m overlaid with over. Entries from over
// win on key collision. Neither input is modified.
func (m Metadata) Merge(over Metadata) Metadata {
	out := make(Metadata, len(m)+len(over))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of m, or nil when m is empty.
func (m Metadata) Clone() Metadata {
	if len(m) == 0 {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the keys of m in ascending order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
