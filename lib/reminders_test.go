package lib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reminder, err := svc.Subscribe(ctx, 1, 5114, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, reminder.LastCheckedEpisode)

	ids, err := svc.SubscribedAnimeIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{5114}, ids)
}

func TestSubscribeDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, 1, 5114, 60)
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, 1, 5114, 64)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	// Same title for another user, and another title for the same user, are
	// both fine.
	_, err = svc.Subscribe(ctx, 2, 5114, 60)
	assert.NoError(t, err)
	_, err = svc.Subscribe(ctx, 1, 21, 1000)
	assert.NoError(t, err)
}

func TestSubscribedAnimeIDsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	ids, err := svc.SubscribedAnimeIDs(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
