package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reserva-eva/models"
	"reserva-eva/services"
)

// ChatWithConcierge relays a visitor message to the concierge. Remote
// failures surface as the fallback sentence, never as an HTTP error.
func ChatWithConcierge(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Concierge request - Session: %s", req.SessionID)

	c.JSON(http.StatusOK, services.AskConcierge(req))
}
