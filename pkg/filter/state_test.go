package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Lifecycle(t *testing.T) {
	records := fixtureProjects()
	state := NewState()

	assert.False(t, state.HasActiveFilters())
	assert.Len(t, state.View(records).Projects, len(records))

	require.NoError(t, state.ToggleFacet(FacetIndustry, "Retail"))
	assert.True(t, state.HasActiveFilters())
	assert.Equal(t, []int{3, 7}, ids(state.View(records).Projects))

	state.SetSearchText("shopping")
	view := state.View(records)
	assert.Equal(t, []int{7}, ids(view.Projects))
	assert.Equal(t, 0, view.Stats.WinRate)

	state.ClearFilters()
	assert.False(t, state.HasActiveFilters())
	assert.Equal(t, "shopping", state.SearchText, "clearing filters keeps the search text")
	assert.Equal(t, []int{7}, ids(state.View(records).Projects))
}

func TestState_SerializesAndClones(t *testing.T) {
	state := NewState()
	require.NoError(t, state.ToggleFacet(FacetYear, "2024"))
	state.SetSearchText("cloud")

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"filters":{"client":[],"industry":[],"year":[2024],"status":[]},"search_text":"cloud"}`, string(data))

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []int{2024}, decoded.Selection.Years())
	assert.Equal(t, "cloud", decoded.SearchText)

	clone := state.Clone()
	require.NoError(t, clone.ToggleFacet(FacetYear, "2024"))
	assert.True(t, state.HasActiveFilters())
	assert.False(t, clone.HasActiveFilters())
}
