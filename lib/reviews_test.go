package lib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 11} {
		_, err := svc.CreateReview(ctx, 5114, 1, rating, "meh")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	for _, rating := range []int{1, 10} {
		_, err := svc.CreateReview(ctx, 5114, 1, rating, "ok")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestListReviewsWithAuthor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	author, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, 5114, author.ID, 10, "peak fiction")
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, 21, author.ID, 8, "long")
	require.NoError(t, err)

	rows, err := svc.ListReviews(ctx, 5114)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "peak fiction", rows[0].ReviewText)
	assert.Equal(t, "mika", rows[0].Username)

	all, err := svc.ListAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteReview(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	author, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	review, err := svc.CreateReview(ctx, 5114, author.ID, 10, "peak fiction")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, review.ID))

	rows, err := svc.ListReviews(ctx, 5114)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
