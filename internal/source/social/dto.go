package social

// Tweet is the subset of a favorites/list entry the tool reads
type Tweet struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	FullText string `json:"full_text,omitempty"` // Set when tweet_mode=extended
	User     User   `json:"user"`
}

// User is the author of a tweet
type User struct {
	ScreenName  string `json:"screen_name"`
	Description string `json:"description"`
}

// ErrorResponse is the error envelope returned by the v1.1 API
type ErrorResponse struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// message returns the first API error message, if any
func (e ErrorResponse) message() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}
