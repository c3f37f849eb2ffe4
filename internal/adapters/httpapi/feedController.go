package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/feed"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

func page(c *gin.Context) int { return feed.ParseNumber(c.Query("page")) }

// Index serves the cached rendering as-is.
func (ctl *FeedController) Index(c *gin.Context) {
	body, err := ctl.fc.Index(c.Request.Context(), page(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (ctl *FeedController) Group(c *gin.Context) {
	g, err := ctl.fc.Group(c.Request.Context(), c.Param("slug"), page(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (ctl *FeedController) Profile(c *gin.Context) {
	p, err := ctl.fc.Profile(c.Request.Context(), middleware.Actor(c), c.Param("username"), page(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *FeedController) Following(c *gin.Context) {
	p, err := ctl.fc.Following(c.Request.Context(), middleware.Actor(c), page(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, p)
}
