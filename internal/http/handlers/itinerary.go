package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/itinerary/:tripOptionId/preview
//
// Returns the assembled itinerary as JSON without requiring bookings or a
// payment to exist.
func (h *Handler) PreviewItinerary(c *gin.Context) {
	tripOptionID, ok := paramID(c, "tripOptionId")
	if !ok {
		return
	}

	doc, err := h.itineraryService(c).Assemble(tripOptionID)
	if err != nil {
		RespondDomainError(c, "itinerary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": doc})
}

// GET /api/itinerary/:tripOptionId/download
//
// Streams the itinerary as a PDF attachment.
func (h *Handler) DownloadItinerary(c *gin.Context) {
	tripOptionID, ok := paramID(c, "tripOptionId")
	if !ok {
		return
	}

	pdfBytes, filename, err := h.itineraryService(c).RenderPDF(tripOptionID)
	if err != nil {
		RespondDomainError(c, "itinerary", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
