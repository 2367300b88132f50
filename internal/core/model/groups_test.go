package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategoryKeepsOrder(t *testing.T) {
	pasta := Timer{ID: "1", Name: "Pasta", Category: "Cooking"}
	essay := Timer{ID: "2", Name: "Essay", Category: "Study"}
	rice := Timer{ID: "3", Name: "Rice", Category: "Cooking"}

	groups := GroupByCategory([]Timer{pasta, essay, rice})

	require.Len(t, groups, 2)
	assert.Equal(t, "Cooking", groups[0].Name)
	assert.Equal(t, []Timer{pasta, rice}, groups[0].Timers)
	assert.Equal(t, "Study", groups[1].Name)
	assert.Equal(t, []Timer{essay}, groups[1].Timers)
}

func TestGroupByCategoryEmptySnapshot(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}
