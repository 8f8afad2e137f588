package jsonscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watershed/jsonscan"
)

func TestReadToKey_FindsLiteralKey(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`{"skip":"x","rows":`))

	drain(t, s, 1) // enter the top-level object
	ok, err := s.ReadToKey(jsonscan.Quote("rows"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadToKey_StopsWhenObjectCloses(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`{"other":"x"} `))

	drain(t, s, 1)
	ok, err := s.ReadToKey(jsonscan.Quote("rows"))
	require.NoError(t, err)
	assert.False(t, ok, "key search must give up once the object closes")
}

func TestStrictOrder_FieldAndListPrimitives(t *testing.T) {
	doc := `{"rows":[{"viaGlobalId":"E1"},{"viaGlobalId":"E2"}]}`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	entered, err := s.BeginField()
	require.NoError(t, err)
	require.True(t, entered)

	found, err := s.ReadToKey(jsonscan.Quote("rows"))
	require.NoError(t, err)
	require.True(t, found)

	entered, err = s.BeginList()
	require.NoError(t, err)
	require.True(t, entered)

	// Iterate the two row objects exactly the way netgraph's strict
	// reader does: BeginField / extract / EndField until the list ends.
	var vias []string
	for {
		entered, err = s.BeginField()
		require.NoError(t, err)
		if !entered {
			break
		}
		found, err = s.ReadToKey(jsonscan.Quote("viaGlobalId"))
		require.NoError(t, err)
		require.True(t, found)
		v, exErr := s.ExtractString(nil)
		require.NoError(t, exErr)
		vias = append(vias, string(v))
		require.NoError(t, s.EndField())
	}
	assert.Equal(t, []string{"E1\n", "E2\n"}, vias)
}

func TestEndList_ConsumesThroughClose(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`["a","b"]}`))

	entered, err := s.BeginList()
	require.NoError(t, err)
	require.True(t, entered)
	require.NoError(t, s.EndList())
	assert.Equal(t, 0, s.ArrayDepth())
}
