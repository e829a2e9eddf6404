package xboard_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkdlabs/chess0go/internal/xboard"
)

func TestNoopSourceNeverHasInput(t *testing.T) {
	var s xboard.NoopSource
	_, ok := s.Poll()
	assert.False(t, ok)
}

func TestStdinSourceDeliversWords(t *testing.T) {
	s := xboard.NewStdinSource(strings.NewReader("force quit\n"))
	deadline := time.Now().Add(time.Second)
	var got []string
	for len(got) < 2 && time.Now().Before(deadline) {
		if w, ok := s.Poll(); ok {
			got = append(got, w)
		}
	}
	assert.Equal(t, []string{"force", "quit"}, got)
}
