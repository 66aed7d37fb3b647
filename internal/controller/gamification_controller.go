package controller

import (
	"bananalearn_backend/internal/service"
	"bananalearn_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// maxLeaderboardLimit caps the page size a client can request.
const maxLeaderboardLimit = 100

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// GetMyBadges godoc
// @Summary Unlocked badges of the current user
// @Description Badges plus unlocked/total/percentage stats
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserBadges}
// @Router /api/student/badges [get]
func (c *GamificationController) GetMyBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.GamificationService.GetUserBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// GetLeaderboard godoc
// @Summary Global bananes leaderboard
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "number of entries" default(10)
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	leaderboard, err := c.GamificationService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, leaderboard)
}
