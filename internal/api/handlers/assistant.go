package handlers

import (
	"net/http"

	"roster-portal-backend/internal/auth"
	"roster-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssistantHandler handles HTTP requests for the assistant roster
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// CreateAssistant creates a new assistant
// @Summary Create assistant
// @Description Admit a new assistant into the caller's roster. Each team seats at most one assistant and the RG must be free.
// @Tags assistants
// @Accept json
// @Produce json
// @Param assistant body service.StaffRequest true "Assistant data"
// @Success 201 {object} service.StaffResponse "Assistant created"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Admission rejected"
// @Security BearerAuth
// @Router /assistants [post]
func (h *AssistantHandler) CreateAssistant(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assistant, err := h.assistantService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assistant)
}

// ListAssistants lists the caller's assistants
// @Summary List assistants
// @Tags assistants
// @Produce json
// @Param team query string false "Filter by team substring"
// @Success 200 {array} service.StaffResponse "Assistants"
// @Security BearerAuth
// @Router /assistants [get]
func (h *AssistantHandler) ListAssistants(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assistants, err := h.assistantService.List(userID, c.Query("team"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistants)
}

// UpdateAssistant updates an existing assistant
// @Summary Update assistant
// @Description Re-admit an existing assistant with the full payload. A team change is checked against the new team's seat.
// @Tags assistants
// @Accept json
// @Produce json
// @Param id path string true "Assistant ID (UUID)"
// @Param assistant body service.StaffRequest true "Assistant data"
// @Success 200 {object} service.StaffResponse "Assistant updated"
// @Failure 404 {object} ErrorResponse "Assistant or organization not found"
// @Failure 409 {object} ErrorResponse "Admission rejected"
// @Security BearerAuth
// @Router /assistants/{id} [put]
func (h *AssistantHandler) UpdateAssistant(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assistantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
		return
	}

	var req service.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assistant, err := h.assistantService.Update(userID, assistantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assistant)
}

// DeleteAssistant deletes an assistant
// @Summary Delete assistant
// @Tags assistants
// @Produce json
// @Param id path string true "Assistant ID (UUID)"
// @Success 204 "Assistant deleted"
// @Failure 404 {object} ErrorResponse "Assistant not found"
// @Security BearerAuth
// @Router /assistants/{id} [delete]
func (h *AssistantHandler) DeleteAssistant(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assistantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assistant ID"})
		return
	}

	if err := h.assistantService.Delete(userID, assistantID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
