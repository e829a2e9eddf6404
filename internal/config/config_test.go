package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	first := Settings.Search.SearchDepth
	Setup()
	assert.Equal(t, first, Settings.Search.SearchDepth)
}

func TestDefaultsArePopulatedWithoutAConfigFile(t *testing.T) {
	assert.True(t, Settings.Search.UseCache)
	assert.True(t, Settings.Search.UseLMR)
	assert.Equal(t, 900, Settings.Eval.QueenValue)
}
