package lib

import (
	"context"
	"testing"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveListRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entries := []models.WatchlistEntry{
		{AnimeID: 5114, Title: "Fullmetal Alchemist: Brotherhood", Episodes: 64, Category: "Completed", WatchedEpisodes: 64, Genres: []string{"Action", "Adventure"}},
		{AnimeID: 21, Title: "One Piece", Episodes: 1100, Category: "Watching", WatchedEpisodes: 250},
	}
	require.NoError(t, svc.SaveList(ctx, 1, entries))

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestSaveListReplacesWholeDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := []models.WatchlistEntry{
		{AnimeID: 1, Title: "Cowboy Bebop", Episodes: 26, Category: "Completed", WatchedEpisodes: 26},
		{AnimeID: 30, Title: "Neon Genesis Evangelion", Episodes: 26, Category: "On Hold", WatchedEpisodes: 12},
	}
	require.NoError(t, svc.SaveList(ctx, 1, first))

	second := []models.WatchlistEntry{
		{AnimeID: 30, Title: "Neon Genesis Evangelion", Episodes: 26, Category: "Completed", WatchedEpisodes: 26},
	}
	require.NoError(t, svc.SaveList(ctx, 1, second))

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSaveListClampsWatchedEpisodes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entries := []models.WatchlistEntry{
		{AnimeID: 1, Title: "Cowboy Bebop", Episodes: 26, Category: "Watching", WatchedEpisodes: 999},
		{AnimeID: 30, Title: "Neon Genesis Evangelion", Episodes: 26, Category: "Watching", WatchedEpisodes: -5},
	}
	require.NoError(t, svc.SaveList(ctx, 1, entries))

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 26, got[0].WatchedEpisodes)
	assert.Equal(t, 0, got[1].WatchedEpisodes)
}

func TestSaveListRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	entries := []models.WatchlistEntry{
		{AnimeID: 1, Title: "Cowboy Bebop", Episodes: 26, Category: "Bingeing", WatchedEpisodes: 3},
	}
	err := svc.SaveList(context.Background(), 1, entries)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.List(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []models.WatchlistEntry{}, got)
}

func TestAnalytics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entries := []models.WatchlistEntry{
		{AnimeID: 1, Title: "Cowboy Bebop", Episodes: 26, Category: "Watching", WatchedEpisodes: 10},
		{AnimeID: 30, Title: "Neon Genesis Evangelion", Episodes: 26, Category: "Watching", WatchedEpisodes: 3},
	}
	require.NoError(t, svc.SaveList(ctx, 1, entries))

	stats, err := svc.Analytics(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 13, stats.TotalEpisodes)
	// 13 episodes * 24 minutes = 312 minutes, rounds to 5 hours.
	assert.Equal(t, 5, stats.TotalWatchTimeHours)
}

func TestAnalyticsNoList(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.Analytics(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEpisodes)
	assert.Zero(t, stats.TotalWatchTimeHours)
}
