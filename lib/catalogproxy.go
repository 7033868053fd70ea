package lib

import (
	"context"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/catalog"
	"go.uber.org/zap"
)

// catalogProxy forwards read-only catalog lookups so the frontend never talks
// to the external API directly.
type catalogProxy struct {
	log     *zap.Logger
	catalog *catalog.Client
}

func (svc *catalogProxy) Genres(ctx context.Context) ([]catalog.Genre, error) {
	return svc.catalog.Genres(ctx)
}

func (svc *catalogProxy) SearchCatalog(ctx context.Context, query string) ([]catalog.Anime, error) {
	return svc.catalog.Search(ctx, query)
}

func (svc *catalogProxy) AnimeDetail(ctx context.Context, animeID int) (*catalog.Anime, error) {
	anime, err := svc.catalog.AnimeFull(ctx, animeID)
	if catalog.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return anime, err
}
