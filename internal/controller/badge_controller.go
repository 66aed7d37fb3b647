package controller

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/service"
	"bananalearn_backend/internal/util"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BadgeController is the admin side of the badge catalog.
type BadgeController struct {
	BadgeService   *service.BadgeService
	StorageService *service.StorageService
}

func NewBadgeController(badgeService *service.BadgeService, storageService *service.StorageService) *BadgeController {
	return &BadgeController{
		BadgeService:   badgeService,
		StorageService: storageService,
	}
}

// ListBadges godoc
// @Summary List all badge definitions
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /api/admin/badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	badges, err := c.BadgeService.ListBadges()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// CreateBadge godoc
// @Summary Create a badge definition
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BadgeRequest true "badge definition"
// @Success 201 {object} util.Response{data=model.Badge}
// @Failure 400 {object} util.Response
// @Router /api/admin/badges [post]
func (c *BadgeController) CreateBadge(ctx *gin.Context) {
	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	badge, err := c.BadgeService.CreateBadge(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, badge)
}

// UpdateBadge godoc
// @Summary Update a badge definition
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "badge id"
// @Param body body service.BadgeRequest true "badge definition"
// @Success 200 {object} util.Response{data=model.Badge}
// @Failure 404 {object} util.Response
// @Router /api/admin/badges/{id} [put]
func (c *BadgeController) UpdateBadge(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid badge id")
		return
	}

	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	badge, err := c.BadgeService.UpdateBadge(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, badge)
}

// DeleteBadge godoc
// @Summary Delete a badge definition
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "badge id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/badges/{id} [delete]
func (c *BadgeController) DeleteBadge(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid badge id")
		return
	}

	if err := c.BadgeService.DeleteBadge(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// UploadIcon godoc
// @Summary Upload a badge icon or clan emblem image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image file"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/badges/upload [post]
func (c *BadgeController) UploadIcon(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedIconExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported image type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := "badges/" + model.GenerateUUID() + ext
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
