package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size"
// @Param category query string false "category filter"
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	skip, err := strconv.ParseInt(ctx.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		util.BadRequest(ctx, "invalid skip")
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		util.BadRequest(ctx, "invalid limit")
		return
	}

	courses, err := c.CourseService.List(ctx.Request.Context(), ctx.Query("category"), skip, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.CourseService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidID):
			util.BadRequest(ctx, "Invalid course ID")
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}
