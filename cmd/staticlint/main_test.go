package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
)

func TestAnalyzers(t *testing.T) {
	set := analyzers()
	require.NotEmpty(t, set)

	names := make(map[string]bool, len(set))
	for _, a := range set {
		assert.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}

	for _, want := range []string{"noexit", "errcheck", "bodyclose", "printf", "nilness"} {
		assert.True(t, names[want], "missing analyzer %s", want)
	}
}

func TestAnalyzersValidateTogether(t *testing.T) {
	assert.NoError(t, analysis.Validate(analyzers()))
}
