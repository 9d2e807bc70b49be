package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "tripoptimizer"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "database not connected")
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM trip_requests").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "database query failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trip_requests_in_db": count})
}
