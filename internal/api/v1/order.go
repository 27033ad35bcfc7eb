package v1

import (
	"net/http"

	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	resolver service.PeriodResolverService
	log      *logger.Logger
}

func NewOrderHandler(
	resolver service.PeriodResolverService,
	log *logger.Logger,
) *OrderHandler {
	return &OrderHandler{
		resolver: resolver,
		log:      log,
	}
}

// @Summary Resolve a billing order
// @Description Resolve the billing order view for a period, frozen or projected
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Billing Period ID"
// @Success 200 {object} dto.BillingOrderResponse
// @Failure 303 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) ResolveOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("period id is required").
			WithHint("Period ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.resolver.Resolve(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
