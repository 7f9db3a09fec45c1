package content

// DefaultLandingContent returns the built-in landing copy.
func DefaultLandingContent() LandingContent {
	return LandingContent{
		Title:       "Discover What's Trending in Social & Entertainment",
		Description: "MingleMoody helps you stay connected with the latest trends, entertainment, and social platforms. Whether you're exploring videos, music, or connecting with friends, these curated links will help you discover what matters most.",
	}
}

// DefaultSearchButtons returns a fresh copy of the seeded buttons. The
// youtube entry links to the internal /webresult path on purpose.
func DefaultSearchButtons() []SearchButton {
	return []SearchButton{
		{ID: "1", Title: "google", Position: 1, WebResultPage: 1},
		{ID: "2", Title: "youtube", Link: "/webresult", Position: 2, WebResultPage: 1},
		{ID: "3", Title: "Explore trending content", Position: 3, WebResultPage: 2},
		{ID: "4", Title: "Connect with friends", Position: 4, WebResultPage: 3},
		{ID: "5", Title: "Discover new music", Position: 5, WebResultPage: 4},
	}
}

// DefaultWebResults returns a fresh copy of the seeded results.
func DefaultWebResults() []WebResult {
	return []WebResult{
		{
			ID:          "1",
			Name:        "hii",
			Link:        "https://example.com",
			Title:       "hii",
			Description: "heyy",
			Sponsored:   false,
			PageNumber:  1,
		},
		{
			ID:          "2",
			Name:        "google",
			Link:        "https://google.com",
			Title:       "google",
			Description: "hey all how are you",
			LogoURL:     "https://www.google.com/favicon.ico",
			Sponsored:   true,
			PageNumber:  1,
		},
	}
}
