package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkdlabs/chess0go/internal/zobrist"
)

func TestFindMissOnEmptyCache(t *testing.T) {
	c := NewCache()
	e := c.Find(zobrist.Key(42), 3)
	assert.Equal(t, emptyDepth, e.Depth)
}

func TestAddThenFindHit(t *testing.T) {
	c := NewCache()
	key := zobrist.Key(1234)
	c.Add(key, Entry{Key: key, Depth: 5, Score: 17})
	e := c.Find(key, 5)
	assert.Equal(t, 17, e.Score)
	assert.Equal(t, 5, e.Depth)
}

func TestFindMissWhenStoredDepthShallower(t *testing.T) {
	c := NewCache()
	key := zobrist.Key(7)
	c.Add(key, Entry{Key: key, Depth: 2, Score: 9})
	e := c.Find(key, 4)
	assert.Equal(t, emptyDepth, e.Depth)
}

func TestAddAlwaysReplaces(t *testing.T) {
	c := NewCache()
	key := zobrist.Key(7)
	c.Add(key, Entry{Key: key, Depth: 8, Score: 100})
	c.Add(key, Entry{Key: key, Depth: 1, Score: -5})
	e := c.Find(key, 0)
	assert.Equal(t, 1, e.Depth)
	assert.Equal(t, -5, e.Score)
	assert.Equal(t, 1, c.Positions())
}

func TestRemoveAndClear(t *testing.T) {
	c := NewCache()
	c.Add(zobrist.Key(1), Entry{Depth: 1})
	c.Add(zobrist.Key(2), Entry{Depth: 1})
	assert.Equal(t, 2, c.Positions())

	c.Remove(zobrist.Key(1))
	assert.Equal(t, 1, c.Positions())

	c.Clear()
	assert.Equal(t, 0, c.Positions())
}

func TestSizeBytesGrowsWithPositions(t *testing.T) {
	c := NewCache()
	assert.Equal(t, 0, c.SizeBytes())
	c.Add(zobrist.Key(1), Entry{Depth: 1})
	assert.Greater(t, c.SizeBytes(), 0)
}
