package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

func TestCreate_PresetsMidpointRatings(t *testing.T) {
	store := NewStore()
	state := store.Create()

	require.NotNil(t, state)
	assert.NotEqual(t, uuid.Nil, state.ID)
	require.Len(t, state.Ratings, len(types.Themes))
	for _, theme := range types.Themes {
		require.Len(t, state.Ratings[theme], types.QuestionsPerTheme)
		for _, v := range state.Ratings[theme] {
			assert.Equal(t, types.RatingMax/2, v)
		}
	}
	assert.False(t, state.Gate.Verified())
}

func TestGet_ReturnsSameState(t *testing.T) {
	store := NewStore()
	created := store.Create()

	got := store.Get(created.ID)
	assert.Same(t, created, got)
}

func TestGet_UnknownID(t *testing.T) {
	store := NewStore()
	assert.Nil(t, store.Get(uuid.New()))
}

func TestDelete_DiscardsSession(t *testing.T) {
	store := NewStore()
	state := store.Create()
	require.Equal(t, 1, store.Len())

	store.Delete(state.ID)
	assert.Nil(t, store.Get(state.ID))
	assert.Equal(t, 0, store.Len())
}

func TestSessions_AreIsolated(t *testing.T) {
	store := NewStore()
	a := store.Create()
	b := store.Create()

	a.Ratings[types.ThemeHealth][0] = 9
	a.Gate.IssueCode("a@example.com")

	assert.Equal(t, types.RatingMax/2, b.Ratings[types.ThemeHealth][0])
	assert.Equal(t, "", b.Gate.Email())
}
