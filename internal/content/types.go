package content

// Storage keys for the three documents.
const (
	KeyLanding = "minglemoody_landing"
	KeyButtons = "minglemoody_buttons"
	KeyResults = "minglemoody_results"
)

// MinPage and MaxPage bound the result-listing pages.
const (
	MinPage = 1
	MaxPage = 5
)

// LandingContent is the hero copy on the landing page.
type LandingContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SearchButton is a landing page navigation button. An empty Link means the
// button opens result page WebResultPage.
type SearchButton struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Link          string `json:"link,omitempty"`
	Position      int    `json:"position"`
	WebResultPage int    `json:"webResultPage"`
}

// HasLink reports whether the button points at an explicit destination.
func (b SearchButton) HasLink() bool {
	return b.Link != ""
}

// WebResult is a listing card shown on one of the result pages.
type WebResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Sponsored   bool   `json:"sponsored"`
	PageNumber  int    `json:"pageNumber"`
}
