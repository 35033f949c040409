package draft_test

import (
	"testing"

	"github.com/sonikrishna9/Tenda-admin/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGroupStartsWithOneBlankRow(t *testing.T) {
	d := draft.New()

	require.NoError(t, d.AddGroup())

	groups := d.Parameters()
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Open)
	require.Len(t, groups[0].Items, 1)
	assert.Empty(t, groups[0].Items[0].Title)
	assert.Empty(t, groups[0].Items[0].Subtitle)
}

func TestAddItemsThenDeleteFirst(t *testing.T) {
	d := draft.New()
	require.NoError(t, d.AddGroup())
	require.NoError(t, d.SetGroupTitle(0, "Specs"))

	// The group starts with one row; fill it and add a second.
	require.NoError(t, d.UpdateItem(0, 0, "title", "Weight"))
	require.NoError(t, d.UpdateItem(0, 0, "subtitle", "1.2kg"))
	require.NoError(t, d.AddItem(0))
	require.NoError(t, d.UpdateItem(0, 1, "title", "Ports"))
	require.NoError(t, d.UpdateItem(0, 1, "subtitle", "4x LAN"))

	require.NoError(t, d.DeleteItem(0, 0))

	groups := d.Parameters()
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Ports", groups[0].Items[0].Title)
	assert.Equal(t, "4x LAN", groups[0].Items[0].Subtitle)
}

func TestToggleGroupIsPresentationalOnly(t *testing.T) {
	d := draft.New()
	require.NoError(t, d.AddGroup())

	require.NoError(t, d.ToggleGroup(0))
	assert.False(t, d.Parameters()[0].Open)
	require.NoError(t, d.ToggleGroup(0))
	assert.True(t, d.Parameters()[0].Open)
}

func TestDeleteGroup(t *testing.T) {
	d := draft.New()
	require.NoError(t, d.AddGroup())
	require.NoError(t, d.AddGroup())
	require.NoError(t, d.SetGroupTitle(0, "first"))
	require.NoError(t, d.SetGroupTitle(1, "second"))

	require.NoError(t, d.DeleteGroup(0))

	groups := d.Parameters()
	require.Len(t, groups, 1)
	assert.Equal(t, "second", groups[0].Title)
}

func TestParameterIndexErrors(t *testing.T) {
	d := draft.New()

	assert.ErrorIs(t, d.ToggleGroup(0), draft.ErrIndexRange)
	assert.ErrorIs(t, d.DeleteGroup(-1), draft.ErrIndexRange)
	assert.ErrorIs(t, d.AddItem(3), draft.ErrIndexRange)

	require.NoError(t, d.AddGroup())
	assert.ErrorIs(t, d.DeleteItem(0, 5), draft.ErrIndexRange)
	assert.ErrorIs(t, d.UpdateItem(0, 0, "color", "red"), draft.ErrUnknownField)
}

func TestParametersReturnsDeepCopy(t *testing.T) {
	d := draft.New()
	require.NoError(t, d.AddGroup())
	require.NoError(t, d.UpdateItem(0, 0, "title", "original"))

	groups := d.Parameters()
	groups[0].Items[0].Title = "mutated"
	groups[0].Title = "mutated"

	fresh := d.Parameters()
	assert.Equal(t, "original", fresh[0].Items[0].Title)
	assert.Empty(t, fresh[0].Title)
}
