package htmlfilter

// MetaLocation is the conventional metadata key under which upstream
// sources record a *Location for the event's markup.
const MetaLocation = "location"

// Location records where an event's markup appeared in the source
// document. Locations are mutable — tokenizers update them as they
// scan — so copying a Metadata clones them instead of aliasing.
type Location struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Clone returns an independent copy of l.
func (l *Location) Clone() *Location {
	c := *l
	return &c
}

// Metadata is a keyed side channel attached to each Event. It carries
// annotations (source locations, synthetic-tag markers, and so on) that
// travel with the event but are not part of its primary payload.
//
// The zero value is ready to use. A Metadata belongs to exactly one
// event and is not safe for concurrent use.
type Metadata struct {
	items map[string]any
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{items: make(map[string]any)}
}

// CopyMetadata returns a deep copy of src. Values are aliased except
// for *Location values, which are cloned so the copy does not share
// mutable position state with the original. A nil src yields an empty
// Metadata.
func CopyMetadata(src *Metadata) *Metadata {
	m := NewMetadata()
	if src == nil {
		return m
	}
	for k, v := range src.items {
		if loc, ok := v.(*Location); ok {
			v = loc.Clone()
		}
		m.items[k] = v
	}
	return m
}

// Put inserts or replaces the value stored under key, returning the
// previous value and whether one was present.
func (m *Metadata) Put(key string, value any) (prev any, replaced bool) {
	if m.items == nil {
		m.items = make(map[string]any)
	}
	prev, replaced = m.items[key]
	m.items[key] = value
	return prev, replaced
}

// Get returns the value stored under key and whether it was present.
func (m *Metadata) Get(key string) (any, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Remove deletes the value stored under key, returning it and whether
// it was present.
func (m *Metadata) Remove(key string) (any, bool) {
	v, ok := m.items[key]
	if ok {
		delete(m.items, key)
	}
	return v, ok
}

// Keys returns the keys currently present, in no particular order.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (m *Metadata) Len() int { return len(m.items) }

// Clear removes every entry. Older revisions of the event API named
// this operation Clear; newer ones RemoveAllItems. Both are kept so
// code written against either revision works.
func (m *Metadata) Clear() { m.reset() }

// RemoveAllItems removes every entry. See Clear.
func (m *Metadata) RemoveAllItems() { m.reset() }

func (m *Metadata) reset() {
	clear(m.items)
}
