package controller

import (
	"bananalearn_backend/internal/service"
	"bananalearn_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type StartSessionRequest struct {
	QuizID uint `json:"quizId" binding:"required"`
}

// StartSession godoc
// @Summary Open a live quiz session
// @Description Returns the session with its short join code
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartSessionRequest true "quiz to run"
// @Success 201 {object} util.Response{data=model.LiveSession}
// @Failure 404 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.StartSession(ctx.Request.Context(), user.UserID, req.QuizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, session)
}

type JoinSessionRequest struct {
	Code string `json:"code" binding:"required"`
}

// JoinSession godoc
// @Summary Join a live session by code
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body JoinSessionRequest true "join code"
// @Success 200 {object} util.Response{data=model.LiveSession}
// @Failure 404 {object} util.Response
// @Router /api/sessions/join [post]
func (c *SessionController) JoinSession(ctx *gin.Context) {
	var req JoinSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.JoinByCode(ctx.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionNotJoinable):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// GetStatus godoc
// @Summary Session state and scoreboard
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "session id"
// @Success 200 {object} util.Response{data=service.SessionStatus}
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id}/status [get]
func (c *SessionController) GetStatus(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	status, err := c.SessionService.GetStatus(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, status)
}

type SubmitAnswerRequest struct {
	Option     int `json:"option" binding:"min=0"`
	ElapsedSec int `json:"elapsedSec" binding:"min=0"`
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description One answer per player per question, points depend on speed
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "session id"
// @Param body body SubmitAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/sessions/{id}/answer [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	points, err := c.SessionService.SubmitAnswer(user.UserID, uint(id), req.Option, req.ElapsedSec)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionNotActive):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyAnswered):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"points": points})
}

// AdvanceSession godoc
// @Summary Move the session to the next question
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "session id"
// @Success 200 {object} util.Response{data=model.LiveSession}
// @Failure 403 {object} util.Response
// @Router /api/sessions/{id}/advance [post]
func (c *SessionController) AdvanceSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	session, err := c.SessionService.Advance(user.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// FinishSession godoc
// @Summary Close the session and release its join code
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "session id"
// @Success 200 {object} util.Response{data=model.LiveSession}
// @Failure 403 {object} util.Response
// @Router /api/sessions/{id}/finish [post]
func (c *SessionController) FinishSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	session, err := c.SessionService.Finish(ctx.Request.Context(), user.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}
