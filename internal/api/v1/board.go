package v1

import (
	"net/http"

	"github.com/faturo/faturo/internal/api/dto"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/service"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	board service.LifecycleBoardService
	log   *logger.Logger
}

func NewBoardHandler(
	board service.LifecycleBoardService,
	log *logger.Logger,
) *BoardHandler {
	return &BoardHandler{
		board: board,
		log:   log,
	}
}

// @Summary Get the contract lifecycle board
// @Description Get the four lifecycle buckets for the caller's tenant
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {object} dto.BoardResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	resp, err := h.board.LoadBoard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a charge status
// @Description Update a charge's payment status and return the refreshed board
// @Tags Board
// @Accept json
// @Produce json
// @Param request body dto.UpdateChargeStatusRequest true "Charge status update"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /board/charges/status [put]
func (h *BoardHandler) UpdateChargeStatus(c *gin.Context) {
	var req dto.UpdateChargeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.board.UpdateChargeStatus(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
