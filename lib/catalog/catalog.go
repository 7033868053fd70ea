// Package catalog is a thin client for the external anime-catalog API
// (Jikan v4 shaped). Responses arrive wrapped in a {"data": ...} envelope.
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/carlmjohnson/requests"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Client struct {
	log       *zap.Logger
	baseURL   string
	transport http.RoundTripper
}

func NewClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, transport http.RoundTripper) *Client {
	return &Client{log, cfg.CatalogBaseURL, transport}
}

type Anime struct {
	AnimeID  int     `json:"mal_id"`
	Title    string  `json:"title"`
	Synopsis string  `json:"synopsis,omitempty"`
	Status   string  `json:"status,omitempty"`
	Score    float64 `json:"score,omitempty"`
	// Episodes is null upstream while a title is still airing without a
	// published count.
	Episodes *int `json:"episodes"`
	Images   struct {
		JPG struct {
			ImageURL string `json:"image_url"`
		} `json:"jpg"`
	} `json:"images"`
	Genres []Genre `json:"genres,omitempty"`
}

type Genre struct {
	GenreID int    `json:"mal_id"`
	Name    string `json:"name"`
	Count   int    `json:"count,omitempty"`
}

// IsNotFound reports whether err is an upstream 404 for an unknown title.
func IsNotFound(err error) bool {
	return requests.HasStatusErr(err, http.StatusNotFound)
}

// Anime fetches one title's summary, including its episode count.
func (c *Client) Anime(ctx context.Context, animeID int) (*Anime, error) {
	var env struct {
		Data *Anime `json:"data"`
	}
	err := requests.
		URL(fmt.Sprintf("%s/anime/%d", c.baseURL, animeID)).
		Transport(c.transport).
		ToJSON(&env).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("catalog returned no data for anime %d", animeID)
	}
	return env.Data, nil
}

// AnimeFull fetches the full detail record for one title.
func (c *Client) AnimeFull(ctx context.Context, animeID int) (*Anime, error) {
	var env struct {
		Data *Anime `json:"data"`
	}
	err := requests.
		URL(fmt.Sprintf("%s/anime/%d/full", c.baseURL, animeID)).
		Transport(c.transport).
		ToJSON(&env).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("catalog returned no data for anime %d", animeID)
	}
	return env.Data, nil
}

func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var env struct {
		Data []Genre `json:"data"`
	}
	err := requests.
		URL(c.baseURL + "/genres/anime").
		Transport(c.transport).
		ToJSON(&env).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]Anime, error) {
	var env struct {
		Data []Anime `json:"data"`
	}
	err := requests.
		URL(c.baseURL+"/anime").
		Param("q", query).
		Param("sfw", "").
		Transport(c.transport).
		ToJSON(&env).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
