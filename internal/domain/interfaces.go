package domain

import "context"

// FavoritesSource fetches the caller's favorited posts
type FavoritesSource interface {
	Favorites(ctx context.Context) ([]FavoritePost, error)
}

// SongSearcher finds the first track matching a query
type SongSearcher interface {
	SearchTrack(ctx context.Context, query string) (SongResult, error)
}

// MovieLookup fetches movie metadata by exact title
type MovieLookup interface {
	LookupTitle(ctx context.Context, title string) (MovieResult, error)
}

// Prompter collects the user's menu choice and free-text answers
type Prompter interface {
	Select(ctx context.Context, title string, choices []Selection) (Selection, error)
	Ask(ctx context.Context, question string) (string, error)
}

// Presenter renders results to the display and the journal
type Presenter interface {
	Favorites(posts []FavoritePost)
	Song(song SongResult)
	Movie(movie MovieResult)
}
