package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/minglemoody/internal/view"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowLanding renders the landing page with its sorted search buttons.
func (a *API) ShowLanding(c *gin.Context) {
	ctx := c.Request.Context()
	page := view.BuildLanding(a.landing.Get(ctx), a.buttons.List(ctx))

	description, err := renderMarkdown(page.Description)
	if err != nil {
		c.Error(err)
		description = template.HTML(template.HTMLEscapeString(page.Description))
	}

	a.renderHTML(c, http.StatusOK, "landing.html", gin.H{
		"title":       page.Title,
		"landing":     page,
		"description": description,
	})
}

// ShowResultPage renders /webresult?p=N. A missing page parameter shows page 1.
func (a *API) ShowResultPage(c *gin.Context) {
	raw, present := c.GetQuery("p")
	page := 1
	if present {
		parsed, ok := parsePage(raw)
		if !ok || !view.ValidPage(parsed) {
			a.renderNotFound(c)
			return
		}
		page = parsed
	}
	a.renderResultPage(c, page)
}

// ResultPageHandler serves a fixed result page such as /webresult2.
func (a *API) ResultPageHandler(page int) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.renderResultPage(c, page)
	}
}

func (a *API) renderResultPage(c *gin.Context, page int) {
	results, err := a.results.ListByPage(c.Request.Context(), page)
	if err != nil {
		a.renderNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "results.html", gin.H{
		"title": SiteName,
		"page":  view.BuildResultPage(page, results),
	})
}

// NotFound renders the 404 page.
func (a *API) NotFound(c *gin.Context) {
	a.renderNotFound(c)
}

func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"title": "Page not found",
		"path":  c.Request.URL.Path,
	})
}

// GetPublicLanding returns the landing view as JSON.
func (a *API) GetPublicLanding(c *gin.Context) {
	ctx := c.Request.Context()
	page := view.BuildLanding(a.landing.Get(ctx), a.buttons.List(ctx))

	buttons := make([]gin.H, 0, len(page.Buttons))
	for _, b := range page.Buttons {
		buttons = append(buttons, gin.H{
			"id":       b.ID,
			"title":    b.Title,
			"target":   b.Target,
			"external": b.External,
			"position": b.Position,
			"page":     b.Page,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       page.Title,
		"description": page.Description,
		"buttons":     buttons,
	})
}

// GetPublicButtons returns the search buttons by position with their targets.
func (a *API) GetPublicButtons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buttons": buttonPayloads(a.buttons.List(c.Request.Context()))})
}

// GetPublicResults returns one result page split into sections.
func (a *API) GetPublicResults(c *gin.Context) {
	page, ok := parsePage(c.DefaultQuery("page", "1"))
	if !ok || !view.ValidPage(page) {
		respondError(c, http.StatusBadRequest, "page must be between 1 and 5")
		return
	}

	results, err := a.results.ListByPage(c.Request.Context(), page)
	if err != nil {
		respondError(c, http.StatusBadRequest, "page must be between 1 and 5")
		return
	}

	pageView := view.BuildResultPage(page, results)
	c.JSON(http.StatusOK, gin.H{
		"page":      pageView.Page,
		"sponsored": pageView.Sponsored,
		"regular":   pageView.Regular,
	})
}

func renderMarkdown(markdown string) (template.HTML, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
