package api

import (
	"net/http"

	resdto "periop-admin/internal/handler/dto/response"
	"periop-admin/internal/handler/httperr"
	"periop-admin/internal/pkg/errs"
	"periop-admin/internal/usecase/commands"
	"periop-admin/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntitlementHandler struct {
	cmds commands.EntitlementCommands
	q    queries.UserQueries
}

func NewEntitlementHandler(cmds commands.EntitlementCommands, q queries.UserQueries) *EntitlementHandler {
	return &EntitlementHandler{cmds: cmds, q: q}
}

// @Summary Find user by email
// @Description Look up a user's entitlement record by exact email
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Param email query string true "User email"
// @Success 200 {object} resdto.UserEntitlementResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users [get]
func (h *EntitlementHandler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Query parameter email is required", nil)
		return
	}
	view, err := h.q.FindEntitlementByEmail(c.Request.Context(), email)
	if err != nil {
		respondEntitlementError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserEntitlementView(view))
}

// @Summary Grant lifetime access
// @Description Grant a user permanent premium access
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserEntitlementResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/lifetime-access [put]
func (h *EntitlementHandler) GrantLifetimeAccess(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.cmds.Grant(c.Request.Context(), id)
	if err != nil {
		respondEntitlementError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserEntitlementView(view))
}

// @Summary Revoke lifetime access
// @Description Remove a user's permanent premium access
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserEntitlementResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/lifetime-access [delete]
func (h *EntitlementHandler) RevokeLifetimeAccess(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.cmds.Revoke(c.Request.Context(), id)
	if err != nil {
		respondEntitlementError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserEntitlementView(view))
}

func respondEntitlementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
