package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/service"
	"github.com/minglemoody/internal/view"
)

type landingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type buttonRequest struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Position      int    `json:"position"`
	WebResultPage int    `json:"webResultPage"`
}

type resultRequest struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Sponsored   bool   `json:"sponsored"`
}

func (r resultRequest) toInput() service.ResultInput {
	return service.ResultInput{
		Name:        r.Name,
		Link:        r.Link,
		Title:       r.Title,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		Sponsored:   r.Sponsored,
	}
}

// GetLanding returns the landing copy being edited.
func (a *API) GetLanding(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"landing": a.landing.Get(c.Request.Context())})
}

// UpdateLanding overwrites the landing copy.
func (a *API) UpdateLanding(c *gin.Context) {
	var req landingRequest
	if !bindJSON(c, &req, "invalid landing content") {
		return
	}

	landing, err := a.landing.Save(c.Request.Context(), service.LandingInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		a.storageFailure(c, err, "failed to save landing page content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Landing page content updated successfully!",
		"landing": landing,
	})
}

// ResetLanding restores the default landing copy.
func (a *API) ResetLanding(c *gin.Context) {
	landing, err := a.landing.Reset(c.Request.Context())
	if err != nil {
		a.storageFailure(c, err, "failed to reset landing page content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Landing page content reset", "landing": landing})
}

// GetButtons lists the search buttons by position.
func (a *API) GetButtons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buttons": buttonPayloads(a.buttons.List(c.Request.Context()))})
}

// CreateButton adds a search button.
func (a *API) CreateButton(c *gin.Context) {
	var req buttonRequest
	if !bindJSON(c, &req, "invalid search button") {
		return
	}

	button, err := a.buttons.Add(c.Request.Context(), service.ButtonInput{
		Title:         req.Title,
		Link:          req.Link,
		Position:      req.Position,
		WebResultPage: req.WebResultPage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrButtonTitleRequired):
			respondError(c, http.StatusBadRequest, "Button title is required")
		case errors.Is(err, service.ErrInvalidPage):
			respondError(c, http.StatusBadRequest, "Web result page must be between 1 and 5")
		default:
			a.storageFailure(c, err, "failed to save search button")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search button added successfully!",
		"button":  buttonPayload(button),
	})
}

// DeleteButton removes a search button by id.
func (a *API) DeleteButton(c *gin.Context) {
	if err := a.buttons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrButtonNotFound):
			respondError(c, http.StatusNotFound, "Search button not found")
		default:
			a.storageFailure(c, err, "failed to delete search button")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Search button deleted successfully!"})
}

// ResetButtons restores the seeded buttons.
func (a *API) ResetButtons(c *gin.Context) {
	buttons, err := a.buttons.Reset(c.Request.Context())
	if err != nil {
		a.storageFailure(c, err, "failed to reset search buttons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Search buttons reset", "buttons": buttonPayloads(buttons)})
}

// GetResults lists the results of one page.
func (a *API) GetResults(c *gin.Context) {
	page, ok := a.adminPage(c)
	if !ok {
		return
	}

	results, err := a.results.ListByPage(c.Request.Context(), page)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Web result page must be between 1 and 5")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "results": results})
}

// CreateResult adds a result to the page given by the page query parameter.
func (a *API) CreateResult(c *gin.Context) {
	page, ok := a.adminPage(c)
	if !ok {
		return
	}

	var req resultRequest
	if !bindJSON(c, &req, "invalid web result") {
		return
	}

	result, err := a.results.Add(c.Request.Context(), page, req.toInput())
	if err != nil {
		a.resultFailure(c, err, "failed to save web result")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Web result added successfully!", "result": result})
}

// UpdateResult replaces the editable fields of a result.
func (a *API) UpdateResult(c *gin.Context) {
	var req resultRequest
	if !bindJSON(c, &req, "invalid web result") {
		return
	}

	result, err := a.results.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		a.resultFailure(c, err, "failed to save web result")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Web result updated successfully!", "result": result})
}

// DeleteResult removes a result by id.
func (a *API) DeleteResult(c *gin.Context) {
	if err := a.results.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.resultFailure(c, err, "failed to delete web result")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Web result deleted successfully!"})
}

// ResetResults restores the seeded results.
func (a *API) ResetResults(c *gin.Context) {
	if err := a.results.Reset(c.Request.Context()); err != nil {
		a.storageFailure(c, err, "failed to reset web results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Web results reset"})
}

func (a *API) adminPage(c *gin.Context) (int, bool) {
	page, ok := parsePage(c.DefaultQuery("page", "1"))
	if !ok || !view.ValidPage(page) {
		respondError(c, http.StatusBadRequest, "Web result page must be between 1 and 5")
		return 0, false
	}
	return page, true
}

func (a *API) resultFailure(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrResultFieldsRequired):
		respondError(c, http.StatusBadRequest, "Name, link, and title are required")
	case errors.Is(err, service.ErrInvalidPage):
		respondError(c, http.StatusBadRequest, "Web result page must be between 1 and 5")
	case errors.Is(err, service.ErrResultNotFound):
		respondError(c, http.StatusNotFound, "Web result not found")
	default:
		a.storageFailure(c, err, fallback)
	}
}

// storageFailure reports a failed write so the operator sees it.
func (a *API) storageFailure(c *gin.Context, err error, message string) {
	a.log.WithError(err).WithField("path", c.Request.URL.Path).Error(message)
	c.Error(err)
	respondError(c, http.StatusInternalServerError, message)
}

func buttonPayload(b content.SearchButton) gin.H {
	payload := gin.H{
		"id":            b.ID,
		"title":         b.Title,
		"position":      b.Position,
		"webResultPage": b.WebResultPage,
		"target":        view.ButtonTarget(b),
	}
	if b.HasLink() {
		payload["link"] = b.Link
	}
	return payload
}

func buttonPayloads(buttons []content.SearchButton) []gin.H {
	payloads := make([]gin.H, 0, len(buttons))
	for _, b := range buttons {
		payloads = append(payloads, buttonPayload(b))
	}
	return payloads
}
