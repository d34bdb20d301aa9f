package wheel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// History is the insertion-ordered collection of snapshots keyed by
// save timestamp. Go maps do not remember insertion order, so History
// keeps its own key order and round-trips it through JSON: marshal
// emits keys in insertion order, unmarshal records file order.
// "Latest" means the last inserted key, never a re-sort.
type History struct {
	order []string
	items map[string]Snapshot
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{items: make(map[string]Snapshot)}
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.order)
}

// Timestamps returns the keys in insertion order.
func (h *History) Timestamps() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Get returns the snapshot stored under ts.
func (h *History) Get(ts string) (Snapshot, bool) {
	s, ok := h.items[ts]
	return s, ok
}

// Set inserts or replaces the snapshot under ts. Replacing an existing
// key keeps its original position, matching the overwrite behavior of
// two saves within the same clock second. Returns true when the key
// was new.
func (h *History) Set(ts string, s Snapshot) bool {
	if h.items == nil {
		h.items = make(map[string]Snapshot)
	}
	_, exists := h.items[ts]
	h.items[ts] = s
	if exists {
		return false
	}
	h.order = append(h.order, ts)
	return true
}

// Delete removes the snapshot under ts, reporting whether it existed.
func (h *History) Delete(ts string) bool {
	if _, ok := h.items[ts]; !ok {
		return false
	}
	delete(h.items, ts)
	for i, k := range h.order {
		if k == ts {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every snapshot.
func (h *History) Clear() {
	h.order = nil
	h.items = make(map[string]Snapshot)
}

// Latest returns the last inserted entry, or ok=false when empty.
func (h *History) Latest() (string, Snapshot, bool) {
	if len(h.order) == 0 {
		return "", nil, false
	}
	ts := h.order[len(h.order)-1]
	return ts, h.items[ts], true
}

// Entries returns timestamp/snapshot pairs, newest first when desc is
// true, insertion order otherwise.
func (h *History) Entries(desc bool) []Entry {
	out := make([]Entry, 0, len(h.order))
	if desc {
		for i := len(h.order) - 1; i >= 0; i-- {
			ts := h.order[i]
			out = append(out, Entry{Timestamp: ts, Snapshot: h.items[ts]})
		}
		return out
	}
	for _, ts := range h.order {
		out = append(out, Entry{Timestamp: ts, Snapshot: h.items[ts]})
	}
	return out
}

// Validate checks every snapshot against the snapshot invariant and is
// used to vet imported payloads before they replace the store.
func (h *History) Validate() error {
	for _, ts := range h.order {
		if err := h.items[ts].Validate(); err != nil {
			return fmt.Errorf("snapshot %q: %w", ts, err)
		}
	}
	return nil
}

// MarshalJSON emits the history object with keys in insertion order.
func (h *History) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ts := range h.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ts)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(h.items[ts])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a history object, preserving document key order.
func (h *History) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("history: expected object, got %v", tok)
	}
	h.order = nil
	h.items = make(map[string]Snapshot)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("history: expected string key, got %v", keyTok)
		}
		var snap Snapshot
		if err := dec.Decode(&snap); err != nil {
			return err
		}
		h.Set(key, snap)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON emits the snapshot with categories in their fixed order,
// appending any unknown categories (tolerated on lax imports) sorted by
// name so output stays deterministic.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writePair := func(c Category) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(string(c))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s[c])
		if err != nil {
			return err
		}
		buf.Write(val)
		return nil
	}
	for _, c := range categories {
		if _, ok := s[c]; !ok {
			continue
		}
		if err := writePair(c); err != nil {
			return nil, err
		}
	}
	var extras []string
	for c := range s {
		if !Known(c) {
			extras = append(extras, string(c))
		}
	}
	sort.Strings(extras)
	for _, c := range extras {
		if err := writePair(Category(c)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
