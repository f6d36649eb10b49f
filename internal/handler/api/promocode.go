package api

import (
	"net/http"

	dompromo "periop-admin/internal/domain/promocode"
	reqdto "periop-admin/internal/handler/dto/request"
	resdto "periop-admin/internal/handler/dto/response"
	"periop-admin/internal/handler/httperr"
	"periop-admin/internal/pkg/errs"
	"periop-admin/internal/usecase/commands"
	"periop-admin/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromoCodeHandler struct {
	cmds commands.PromoCodeCommands
	q    queries.PromoCodeQueries
}

func NewPromoCodeHandler(cmds commands.PromoCodeCommands, q queries.PromoCodeQueries) *PromoCodeHandler {
	return &PromoCodeHandler{cmds: cmds, q: q}
}

// @Summary Create promo code
// @Description Register a new influencer promo code
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoCodeRequest true "Create promo code request"
// @Success 201 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/promo-codes [post]
func (h *PromoCodeHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondPromoCodeError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.PromoCodeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promo code", nil)
		return
	}
	c.Header("Location", "/api/admin/promo-codes/"+result.PromoCodeID.String())
	c.JSON(http.StatusCreated, resdto.FromPromoCodeView(view))
}

// @Summary List promo codes
// @Description List every promo code, active and inactive, oldest first
// @Tags promo-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromoCodeResponse
// @Failure 401 {object} map[string]string
// @Router /admin/promo-codes [get]
func (h *PromoCodeHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list promo codes", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeList(items))
}

// @Summary Get promo code
// @Description Get a promo code by ID
// @Tags promo-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promo-codes/{id} [get]
func (h *PromoCodeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPromoCodeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promo code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary Deactivate promo code
// @Description Permanently deactivate a promo code
// @Tags promo-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/promo-codes/{id}/deactivate [post]
func (h *PromoCodeHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		respondPromoCodeError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promo code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

func respondPromoCodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidation):
		detail := gin.H{}
		if field := dompromo.FieldOf(err); field != "" {
			detail["field"] = field
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promo code data", detail)
	case errors.Is(err, errs.ErrPromoCodeConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Promo code already exists", nil)
	case errors.Is(err, errs.ErrPromoCodeAlreadyInactive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Promo code is already inactive", nil)
	case errors.Is(err, errs.ErrPromoCodeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
