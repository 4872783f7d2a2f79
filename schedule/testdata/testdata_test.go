package testdata

import (
	"testing"

	"github.com/relia1/unconfrs/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform_MoreSessionsThanCapacity(t *testing.T) {
	params := Uniform(3, 5)
	g := schedule.Build(params)
	assert.Greater(t, len(params.Pool), g.Capacity())
}

func TestUniform_CellTagsAreSetEvenWhenEmpty(t *testing.T) {
	params := Uniform(3, 5)
	g := schedule.Build(params)

	cell := g.Cell(schedule.Position{Row: 0, Col: 0})
	require.Nil(t, cell.SessionID)
	require.NotNil(t, cell.TagID)
	assert.Equal(t, 1, *cell.TagID)
}

func TestUniformPreassigned_PinsFirstCell(t *testing.T) {
	params := UniformPreassigned(3, 5)
	g := schedule.Build(params)

	cell := g.Cell(schedule.Position{Row: 0, Col: 0})
	require.True(t, cell.Pinned)
	require.NotNil(t, cell.SessionID)
	assert.Equal(t, schedule.SessionID(999), *cell.SessionID)
	assert.Equal(t, 0, cell.NumVotes)
}
