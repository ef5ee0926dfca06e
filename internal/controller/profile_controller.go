package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxPictureSize = 5 << 20 // 5 MiB

type ProfileController struct {
	ProfileService *service.ProfileService
	StorageService *service.StorageService
}

func NewProfileController(profileService *service.ProfileService, storageService *service.StorageService) *ProfileController {
	return &ProfileController{
		ProfileService: profileService,
		StorageService: storageService,
	}
}

type createProfileRequest struct {
	Name           string `json:"name" binding:"required"`
	MobileNumber   string `json:"mobile_number" binding:"required"`
	DOB            string `json:"dob"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	MobileNumber   *string `json:"mobile_number"`
	DOB            *string `json:"dob"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// @Summary Create profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body createProfileRequest true "profile"
// @Success 201 {object} util.Response
// @Router /profile [post]
func (c *ProfileController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Create(ctx.Request.Context(), claims.UserID, claims.Email, service.ProfileInput{
		Name:           req.Name,
		MobileNumber:   req.MobileNumber,
		DOB:            req.DOB,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, util.ErrProfileExists) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, profile)
}

// @Summary Get profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.Get(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "Profile not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body updateProfileRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Update(ctx.Request.Context(), claims.UserID, service.ProfileUpdate{
		Name:           req.Name,
		MobileNumber:   req.MobileNumber,
		DOB:            req.DOB,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "Profile not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary Upload profile picture
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "picture"
// @Success 200 {object} util.Response
// @Router /profile/picture [post]
func (c *ProfileController) UploadPicture(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxPictureSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%s_%d%s", claims.UserID, time.Now().Unix(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	profile, err := c.ProfileService.SetPicture(ctx.Request.Context(), claims.UserID, url)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "Profile not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
