package domain

// Selection is one of the four menu actions. The set is closed: only the
// constants below are valid values.
type Selection int

const (
	ShowFavorites Selection = iota
	SearchSong
	SearchMovie
	RunStoredQuery
)

var selectionNames = [...]string{
	ShowFavorites:  "my-tweets",
	SearchSong:     "spotify-this-song",
	SearchMovie:    "movie-this",
	RunStoredQuery: "do-what-it-says",
}

// Selections returns every menu action in display order
func Selections() []Selection {
	return []Selection{ShowFavorites, SearchSong, SearchMovie, RunStoredQuery}
}

// String returns the menu label of the selection
func (s Selection) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return selectionNames[s]
}

// Valid reports whether s is one of the defined selections
func (s Selection) Valid() bool {
	return s >= ShowFavorites && s <= RunStoredQuery
}

// ParseSelection maps a menu label back to its Selection
func ParseSelection(name string) (Selection, bool) {
	for i, n := range selectionNames {
		if n == name {
			return Selection(i), true
		}
	}
	return 0, false
}

// Default queries used when the user submits an empty answer
const (
	DefaultSong  = "The Sign - Ace of Base"
	DefaultMovie = "Mr. Nobody."
)

// FavoritesPageSize is the number of favorited posts requested per call
const FavoritesPageSize = 20

// NotAvailable stands in for optional values the source did not provide
const NotAvailable = "N/A"

// Field is one labelled line of presented output
type Field struct {
	Label string
	Value string
}

// SongResult is the first track matched by a music search
type SongResult struct {
	Title        string
	Album        string
	Artist       string
	ExternalLink string // Spotify web URL
}

// Fields returns the song's fields in presentation order
func (s SongResult) Fields() []Field {
	return []Field{
		{Label: "Song Name", Value: s.Title},
		{Label: "Album Name", Value: s.Album},
		{Label: "Artist Name", Value: s.Artist},
		{Label: "Spotify Link", Value: s.ExternalLink},
	}
}

// MovieResult is the metadata of a single exact-title movie lookup
type MovieResult struct {
	Title                string
	Year                 string
	IMDBRating           string
	RottenTomatoesRating string // NotAvailable when the source has no rating
	Country              string
	Language             string
	Plot                 string
	Actors               string
}

// Fields returns the movie's fields in presentation order
func (m MovieResult) Fields() []Field {
	return []Field{
		{Label: "Title", Value: m.Title},
		{Label: "Year", Value: m.Year},
		{Label: "IMDB Rating", Value: m.IMDBRating},
		{Label: "Rotten Tomatoes Rating", Value: m.RottenTomatoesRating},
		{Label: "Country", Value: m.Country},
		{Label: "Language", Value: m.Language},
		{Label: "Plot", Value: m.Plot},
		{Label: "Actors", Value: m.Actors},
	}
}

// FavoritePost is one of the caller's favorited social posts
type FavoritePost struct {
	Text              string
	AuthorDescription string
}

// Fields returns the post's fields in presentation order
func (p FavoritePost) Fields() []Field {
	return []Field{
		{Label: "Tweet", Value: p.Text},
		{Label: "Author", Value: p.AuthorDescription},
	}
}
