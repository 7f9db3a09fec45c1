package view

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/minglemoody/internal/content"
)

// ButtonView is a search button ready for rendering.
type ButtonView struct {
	ID       string
	Title    string
	Target   string
	External bool
	Position int
	Page     int
}

// LandingView is everything the landing page shows.
type LandingView struct {
	Title       string
	Description string
	Buttons     []ButtonView
}

// ResultPageView splits a result page into its two sections.
type ResultPageView struct {
	Page      int
	Sponsored []content.WebResult
	Regular   []content.WebResult
	Empty     bool
}

// ValidPage reports whether p names one of the result-listing pages.
func ValidPage(p int) bool {
	return p >= content.MinPage && p <= content.MaxPage
}

// ResultPagePath is the public path of result page p.
func ResultPagePath(p int) string {
	return fmt.Sprintf("/webresult?p=%d", p)
}

// ButtonTarget is where a button navigates: its link when set, otherwise its
// result page.
func ButtonTarget(b content.SearchButton) string {
	if b.HasLink() {
		return b.Link
	}
	return ResultPagePath(b.WebResultPage)
}

// ButtonTargetIsExternal reports whether the target leaves the site.
func ButtonTargetIsExternal(b content.SearchButton) bool {
	if !b.HasLink() {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(b.Link))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SortButtons returns a copy of buttons ordered by ascending position. Ties
// keep their stored order.
func SortButtons(buttons []content.SearchButton) []content.SearchButton {
	sorted := slices.Clone(buttons)
	slices.SortStableFunc(sorted, func(a, b content.SearchButton) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return sorted
}

// BuildLanding assembles the landing page from stored content.
func BuildLanding(landing content.LandingContent, buttons []content.SearchButton) LandingView {
	sorted := SortButtons(buttons)
	views := make([]ButtonView, 0, len(sorted))
	for _, b := range sorted {
		views = append(views, ButtonView{
			ID:       b.ID,
			Title:    b.Title,
			Target:   ButtonTarget(b),
			External: ButtonTargetIsExternal(b),
			Position: b.Position,
			Page:     b.WebResultPage,
		})
	}

	return LandingView{
		Title:       landing.Title,
		Description: landing.Description,
		Buttons:     views,
	}
}

// BuildResultPage partitions the results of one page into sponsored and
// regular sections, preserving order within each.
func BuildResultPage(page int, results []content.WebResult) ResultPageView {
	view := ResultPageView{
		Page:      page,
		Sponsored: make([]content.WebResult, 0),
		Regular:   make([]content.WebResult, 0),
	}
	for _, r := range results {
		if r.Sponsored {
			view.Sponsored = append(view.Sponsored, r)
		} else {
			view.Regular = append(view.Regular, r)
		}
	}
	view.Empty = len(view.Sponsored) == 0 && len(view.Regular) == 0
	return view
}
