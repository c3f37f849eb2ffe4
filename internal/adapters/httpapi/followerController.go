package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/access"

	"github.com/gin-gonic/gin"
)

type FollowerController struct{ fc FollowerUseCase }

func NewFollowerController(fc FollowerUseCase) *FollowerController {
	return &FollowerController{fc: fc}
}

// Follow دنبال کردن تکراری یا دنبال کردن خود خطا نیست
func (ctl *FollowerController) Follow(c *gin.Context) {
	username := c.Param("username")
	if err := ctl.fc.Follow(c.Request.Context(), middleware.Actor(c), username); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Redirect(http.StatusFound, access.ProfilePath(username))
}

// Unfollow اگر رابطه‌ای وجود نداشته باشد 404 برمی‌گرداند
func (ctl *FollowerController) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if err := ctl.fc.Unfollow(c.Request.Context(), middleware.Actor(c), username); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Redirect(http.StatusFound, access.ProfilePath(username))
}

func (ctl *FollowerController) GetFollowers(c *gin.Context) {
	followers, err := ctl.fc.GetFollowers(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *FollowerController) GetFollowing(c *gin.Context) {
	following, err := ctl.fc.GetFollowing(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, following)
}
