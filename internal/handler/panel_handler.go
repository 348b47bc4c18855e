package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnilink/leads-backend-go/pkg/response"
)

// PanelStore is the key/value contract the admin panels persist through
type PanelStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// PanelHandler handles HTTP requests for admin panel state
type PanelHandler struct {
	store PanelStore
}

// NewPanelHandler creates a new panel state handler
func NewPanelHandler(store PanelStore) *PanelHandler {
	return &PanelHandler{store: store}
}

// GetPanel handles GET /api/v1/panels/:key
func (h *PanelHandler) GetPanel(c *gin.Context) {
	key := c.Param("key")

	value, err := h.store.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "No state stored for this panel")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get panel state", err)
		return
	}

	response.Success(c, gin.H{
		"key":   key,
		"value": json.RawMessage(value),
	})
}

// SetPanel handles PUT /api/v1/panels/:key
func (h *PanelHandler) SetPanel(c *gin.Context) {
	key := c.Param("key")

	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		response.Error(c, http.StatusBadRequest, "Panel state must be valid JSON", err)
		return
	}

	if err := h.store.Set(key, string(value)); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save panel state", err)
		return
	}

	response.Success(c, gin.H{"key": key})
}
