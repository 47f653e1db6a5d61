package movie

// Response is an OMDb title lookup response.
// OMDb answers unknown titles with 200 and {"Response":"False","Error":"..."}.
type Response struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	IMDBRating string   `json:"imdbRating"`
	Ratings    []Rating `json:"Ratings"`
	Country    string   `json:"Country"`
	Language   string   `json:"Language"`
	Plot       string   `json:"Plot"`
	Actors     string   `json:"Actors"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error,omitempty"`
}

// Rating is one third-party rating, e.g. {"Source":"Rotten Tomatoes","Value":"67%"}
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// rottenTomatoesIndex is where OMDb places the Rotten Tomatoes rating
// (after Internet Movie Database).
const rottenTomatoesIndex = 1
