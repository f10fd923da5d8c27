package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/compass-backend/internal/http/response"
	"github.com/yungbote/compass-backend/internal/pkg/apperr"
	"github.com/yungbote/compass-backend/internal/pkg/ctxutil"
	"github.com/yungbote/compass-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GET /api/user
func (ph *ProfileHandler) GetProfile(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.FromError(c, apperr.Auth("token missing"))
		return
	}
	view, err := ph.profileService.GetProfile(c.Request.Context(), rd.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": view})
}

// PUT /api/user
func (ph *ProfileHandler) UpdateProfile(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.FromError(c, apperr.Auth("token missing"))
		return
	}
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	view, err := ph.profileService.UpdateProfile(c.Request.Context(), rd.UserID, patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": view})
}
