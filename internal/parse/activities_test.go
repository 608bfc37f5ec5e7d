package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitiesNumberedList(t *testing.T) {
	text := "1. 🏰 Castle Detectives\n" +
		"Brief: Explore the ruins of a local castle and gather clues.\n" +
		"**Differentiation**: Pair readers with mappers.\n" +
		"- Works outdoors\n" +
		"\n" +
		"2. 🎨 Senses of the Sea\n" +
		"Paint the coastline from memory.\n"

	cards := Activities(text)
	require.Len(t, cards, 2)

	assert.Equal(t, "🏰 Castle Detectives", cards[0].Title)
	require.Len(t, cards[0].Body, 3)
	assert.Equal(t, "Brief: Explore the ruins of a local castle and gather clues.", cards[0].Body[0])
	assert.Equal(t, "Differentiation: Pair readers with mappers.", cards[0].Body[1])
	assert.Equal(t, "Works outdoors", cards[0].Body[2])

	assert.Equal(t, "🎨 Senses of the Sea", cards[1].Title)
}

func TestActivitiesHeadingAndBoldMarkers(t *testing.T) {
	text := "## River Walk Survey\nMeasure flow speed with oranges.\n" +
		"**Storoom Sgwrsio**\nA bilingual talking circle.\n" +
		"**3. Data Dragons**\nChart the results.\n"

	cards := Activities(text)
	require.Len(t, cards, 3)
	assert.Equal(t, "River Walk Survey", cards[0].Title)
	assert.Equal(t, "Storoom Sgwrsio", cards[1].Title)
	assert.Equal(t, "Data Dragons", cards[2].Title)
}

func TestActivitiesDropsShortTitles(t *testing.T) {
	text := "1. ok\nbody line\n\n2. A proper activity name\nmore body\n"
	cards := Activities(text)
	require.Len(t, cards, 1)
	assert.Equal(t, "A proper activity name", cards[0].Title)
}

func TestActivitiesUnstructuredTextYieldsNoCards(t *testing.T) {
	text := "Here are some creative ideas rooted in cynefin for your class.\n" +
		"They build on the selected areas of learning and experience and\n" +
		"can be adapted for mixed-age groups across the progression step.\n"
	cards := Activities(text)
	assert.Empty(t, cards, "caller should fall back to verbatim rendering")
}

func TestActivitiesPreambleBeforeFirstMarkerDropped(t *testing.T) {
	text := "Here are four activity ideas for your topic:\n\n" +
		"1. Cynefin Mapping\nSketch the square mile around the school.\n"
	cards := Activities(text)
	require.Len(t, cards, 1)
	assert.Equal(t, "Cynefin Mapping", cards[0].Title)
}

func TestActivitiesBlankLinesDroppedFromBody(t *testing.T) {
	text := "1. Filling the Gaps\n\n\n  spaced out line  \n\n"
	cards := Activities(text)
	require.Len(t, cards, 1)
	require.Len(t, cards[0].Body, 1)
	assert.Equal(t, "spaced out line", cards[0].Body[0])
}
