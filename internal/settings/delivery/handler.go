package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"habitus-backend/internal/settings/usecase"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase}
}

// GetSettings returns the user's settings (defaults when never saved)
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")

	s, err := h.settingsUsecase.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateSettings applies partial settings updates
// PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var updates usecase.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.settingsUsecase.UpdateSettings(userID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s)
}
