// Package transpositiontable implements component B of the search core: a
// map-backed, always-replace transposition cache. Grounded on
// original_source/src/cache.{h,cpp} (Cache::find/add/remove/clear/size),
// kept map-backed rather than the teacher's array-backed, depth/age-weighted
// TtTable — spec.md §4.B requires unconditional replacement on add, which
// the teacher's Put does not do.
package transpositiontable

import (
	"unsafe"

	"github.com/mkdlabs/chess0go/internal/zobrist"
)

// Entry mirrors original_source's ttEntry: a position key, the search depth
// the score was produced at, and the score itself. No bound-type flag is
// carried (spec.md open question 3, decided in SPEC_FULL.md §5.3: probes
// always apply their stored score).
type Entry struct {
	Key   zobrist.Key
	Depth int
	Score int
	Move  uint32 // optional move slot; internal/search always stores 0 here
}

const emptyDepth = -1

// emptyEntry is the zero-value-with-sentinel-depth Cache::find returns on a
// miss, matching ttEntry's default constructor (key=0, depth=TT_EMPTY_VALUE).
var emptyEntry = Entry{Depth: emptyDepth}

// Cache is the transposition cache, safe for single-search use only (the
// teacher's own TtTable is likewise not meant for concurrent probes from
// more than one search thread; spec.md's Non-goals exclude SMP search).
type Cache struct {
	data map[zobrist.Key]Entry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[zobrist.Key]Entry)}
}

// Find returns the entry stored at key iff it exists and was stored at a
// depth at least as deep as depth, exactly like Cache::find(key, depth):
// a shallower stored entry is treated as a miss.
func (c *Cache) Find(key zobrist.Key, depth int) Entry {
	e, ok := c.data[key]
	if !ok || e.Depth < depth {
		return emptyEntry
	}
	return e
}

// Add always overwrites whatever was stored at key, the "always replace"
// policy spec.md §4.B requires (original_source's Cache::add does the same:
// cacheData[key] = entry, no replacement scheme).
func (c *Cache) Add(key zobrist.Key, e Entry) {
	c.data[key] = e
}

// Remove deletes key's entry if present.
func (c *Cache) Remove(key zobrist.Key) {
	delete(c.data, key)
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.data = make(map[zobrist.Key]Entry)
}

// Positions returns the number of entries stored.
func (c *Cache) Positions() int {
	return len(c.data)
}

// SizeBytes approximates memory use as positions()*sizeof(Entry), resolving
// spec.md's open question 2 (original_source's Cache::size() multiplies by
// BOARD_SERIAL_SIZE, an unrelated constant left over from a board
// serialization format the cache never uses — not reproduced here; see
// SPEC_FULL.md §5.2 and DESIGN.md).
func (c *Cache) SizeBytes() int {
	return len(c.data) * int(unsafe.Sizeof(Entry{}))
}
