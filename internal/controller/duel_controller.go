package controller

import (
	"bananalearn_backend/internal/service"
	"bananalearn_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DuelController struct {
	DuelService *service.DuelService
}

func NewDuelController(duelService *service.DuelService) *DuelController {
	return &DuelController{DuelService: duelService}
}

type CreateDuelRequest struct {
	OpponentID uint `json:"opponentId" binding:"required"`
	QuizID     uint `json:"quizId" binding:"required"`
	Stake      int  `json:"stake" binding:"required,min=1"`
}

// CreateDuel godoc
// @Summary Challenge another player
// @Description The stake is escrowed from the challenger immediately
// @Tags duels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateDuelRequest true "challenge"
// @Success 201 {object} util.Response{data=model.Duel}
// @Failure 400 {object} util.Response
// @Failure 402 {object} util.Response
// @Router /api/duels [post]
func (c *DuelController) CreateDuel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateDuelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	duel, err := c.DuelService.CreateDuel(user.UserID, req.OpponentID, req.QuizID, req.Stake)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInsufficientBananes):
			util.Error(ctx, 402, err.Error())
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, duel)
}

// ListDuels godoc
// @Summary Duels involving the current user
// @Tags duels
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Duel}
// @Router /api/duels [get]
func (c *DuelController) ListDuels(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	duels, err := c.DuelService.ListDuels(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, duels)
}

// GetDuel godoc
// @Summary Duel detail
// @Tags duels
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "duel id"
// @Success 200 {object} util.Response{data=model.Duel}
// @Failure 404 {object} util.Response
// @Router /api/duels/{id} [get]
func (c *DuelController) GetDuel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid duel id")
		return
	}

	duel, err := c.DuelService.GetDuel(user.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDuelNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrDuelNotParticipant):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, duel)
}

// AcceptDuel godoc
// @Summary Accept a pending challenge
// @Description The opponent's stake is escrowed on acceptance
// @Tags duels
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "duel id"
// @Success 200 {object} util.Response{data=model.Duel}
// @Failure 402 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/duels/{id}/accept [post]
func (c *DuelController) AcceptDuel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid duel id")
		return
	}

	duel, err := c.DuelService.AcceptDuel(user.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDuelNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrDuelNotPending):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrDuelNotParticipant):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrInsufficientBananes):
			util.Error(ctx, 402, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, duel)
}

type DuelResultRequest struct {
	Score int `json:"score" binding:"min=0"`
}

// SubmitResult godoc
// @Summary Submit a duel score
// @Description Once both sides have reported, the pot is settled
// @Tags duels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "duel id"
// @Param body body DuelResultRequest true "score"
// @Success 200 {object} util.Response{data=model.Duel}
// @Failure 409 {object} util.Response
// @Router /api/duels/{id}/result [post]
func (c *DuelController) SubmitResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid duel id")
		return
	}

	var req DuelResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	duel, err := c.DuelService.SubmitResult(user.UserID, uint(id), req.Score)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDuelNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrDuelNotActive):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrDuelNotParticipant):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, duel)
}
