package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineButtonsOnePerRow(t *testing.T) {
	markup := InlineButtons([]InlineBtn{
		{Text: "A", Unique: "a"},
		{Text: "B", Unique: "b", Data: "1"},
	})

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 1)
	assert.Equal(t, "A", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "B", markup.InlineKeyboard[1][0].Text)
}

func TestInlineButtonsRowsKeepsLayout(t *testing.T) {
	markup := InlineButtonsRows(
		[]InlineBtn{{Text: "A", Unique: "a"}, {Text: "B", Unique: "b"}},
		[]InlineBtn{{Text: "C", Unique: "c"}},
	)

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 1)
	assert.Equal(t, "C", markup.InlineKeyboard[1][0].Text)
}

func TestInlineButtonsNPerRowChunks(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "1", Unique: "x"},
		{Text: "2", Unique: "x"},
		{Text: "3", Unique: "x"},
		{Text: "4", Unique: "x"},
		{Text: "5", Unique: "x"},
	}

	markup := InlineButtonsNPerRow(buttons, 2)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)
	assert.Len(t, markup.InlineKeyboard[2], 1)

	// n <= 1 degrades to one button per row.
	markup = InlineButtonsNPerRow(buttons, 0)
	assert.Len(t, markup.InlineKeyboard, len(buttons))
}
