package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/suggest"
)

// SuggestHandlers provides the keyword autocomplete endpoint.
type SuggestHandlers struct {
	log *zerolog.Logger
}

// NewSuggestHandlers creates a new suggest handlers instance.
func NewSuggestHandlers(logger *zerolog.Logger) *SuggestHandlers {
	return &SuggestHandlers{log: logger}
}

// AutocompleteRequest represents the autocomplete request body.
type AutocompleteRequest struct {
	Query string `json:"query"`
}

// AutocompleteResponse represents the autocomplete response body.
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Autocomplete returns keyword suggestions for a prefix.
// POST /autocomplete
func (h *SuggestHandlers) Autocomplete(c *gin.Context) {
	var req AutocompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid autocomplete request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, AutocompleteResponse{Suggestions: suggest.Suggest(req.Query)})
}
