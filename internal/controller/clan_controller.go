package controller

import (
	"bananalearn_backend/internal/service"
	"bananalearn_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ClanController struct {
	ClanService *service.ClanService
}

func NewClanController(clanService *service.ClanService) *ClanController {
	return &ClanController{ClanService: clanService}
}

// CreateClan godoc
// @Summary Found a clan
// @Tags clans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ClanRequest true "clan"
// @Success 201 {object} util.Response{data=model.Clan}
// @Failure 409 {object} util.Response
// @Router /api/clans [post]
func (c *ClanController) CreateClan(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ClanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	clan, err := c.ClanService.CreateClan(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrClanNameTaken):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyClanMember):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, clan)
}

// ListClans godoc
// @Summary List clans
// @Tags clans
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Clan}
// @Router /api/clans [get]
func (c *ClanController) ListClans(ctx *gin.Context) {
	clans, err := c.ClanService.ListClans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, clans)
}

// GetClan godoc
// @Summary Clan detail with member count
// @Tags clans
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "clan id"
// @Success 200 {object} util.Response{data=service.ClanDetail}
// @Failure 404 {object} util.Response
// @Router /api/clans/{id} [get]
func (c *ClanController) GetClan(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid clan id")
		return
	}

	detail, err := c.ClanService.GetClan(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrClanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// JoinClan godoc
// @Summary Join a clan
// @Tags clans
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "clan id"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/clans/{id}/join [post]
func (c *ClanController) JoinClan(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid clan id")
		return
	}

	if err := c.ClanService.JoinClan(user.UserID, uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrClanNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyClanMember):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"joined": id})
}

type ContributeRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// Contribute godoc
// @Summary Donate bananes to the clan war chest
// @Description The amount is deducted from the member's balance
// @Tags clans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "clan id"
// @Param body body ContributeRequest true "donation"
// @Success 200 {object} util.Response
// @Failure 402 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/clans/{id}/contribute [post]
func (c *ClanController) Contribute(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid clan id")
		return
	}

	var req ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err = c.ClanService.Contribute(ctx.Request.Context(), user.UserID, uint(id), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrClanNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotClanMember):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrInsufficientBananes):
			util.Error(ctx, 402, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"contributed": req.Amount})
}

// WarRanking godoc
// @Summary Clan war leaderboard
// @Description Clans ranked by total contributions, cached for 30 seconds
// @Tags clans
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/clan-wars/ranking [get]
func (c *ClanController) WarRanking(ctx *gin.Context) {
	ranking, err := c.ClanService.WarRanking(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ranking)
}
