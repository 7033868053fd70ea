package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{CatalogBaseURL: server.URL}
	return NewClient(nil, cfg, zap.NewNop(), http.DefaultTransport)
}

func TestAnime(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/5114", r.URL.Path)
		fmt.Fprint(w, `{"data": {"mal_id": 5114, "title": "Fullmetal Alchemist: Brotherhood", "episodes": 64}}`)
	}))

	anime, err := client.Anime(context.Background(), 5114)
	require.NoError(t, err)
	assert.Equal(t, 5114, anime.AnimeID)
	require.NotNil(t, anime.Episodes)
	assert.Equal(t, 64, *anime.Episodes)
}

func TestAnimeNullEpisodes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"mal_id": 21, "title": "One Piece", "episodes": null}}`)
	}))

	anime, err := client.Anime(context.Background(), 21)
	require.NoError(t, err)
	assert.Nil(t, anime.Episodes)
}

func TestAnimeNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status": 404}`, http.StatusNotFound)
	}))

	_, err := client.Anime(context.Background(), 999999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGenres(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genres/anime", r.URL.Path)
		fmt.Fprint(w, `{"data": [{"mal_id": 1, "name": "Action", "count": 5000}, {"mal_id": 2, "name": "Adventure", "count": 4000}]}`)
	}))

	genres, err := client.Genres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime", r.URL.Path)
		assert.Equal(t, "bebop", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"data": [{"mal_id": 1, "title": "Cowboy Bebop", "episodes": 26}]}`)
	}))

	results, err := client.Search(context.Background(), "bebop")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cowboy Bebop", results[0].Title)
}

func TestAnimeFull(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/1/full", r.URL.Path)
		fmt.Fprint(w, `{"data": {"mal_id": 1, "title": "Cowboy Bebop", "episodes": 26, "synopsis": "Space bounty hunters.", "genres": [{"mal_id": 1, "name": "Action"}]}}`)
	}))

	anime, err := client.AnimeFull(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Space bounty hunters.", anime.Synopsis)
	require.Len(t, anime.Genres, 1)
}
