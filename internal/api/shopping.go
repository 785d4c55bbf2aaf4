package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/service"
)

type ShoppingHandler struct {
	shopping service.IShoppingService
	logger   *zap.Logger
}

func NewShoppingHandler(shopping service.IShoppingService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping, logger: logger}
}

// GetShoppingList serves GET /shopping-list?from=&to=. Without both
// endpoints the list is empty and range is null.
func (h *ShoppingHandler) GetShoppingList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.shopping.GetShoppingList(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
