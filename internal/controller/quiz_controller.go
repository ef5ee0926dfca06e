package controller

import (
	"errors"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type attemptRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// @Summary List quizzes for a course
// @Tags quizzes
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Router /quizzes/course/{courseId} [get]
func (c *QuizController) ListForCourse(ctx *gin.Context) {
	summaries, err := c.QuizService.ListForCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summaries)
}

// @Summary Get quiz with questions for attempting
// @Description Correct-answer flags are stripped from the payload.
// @Tags quizzes
// @Produce json
// @Param id path string true "quiz id"
// @Success 200 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetForAttempt(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidID):
			util.BadRequest(ctx, "Invalid quiz ID")
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, quiz)
}

// @Summary Submit a quiz attempt
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "quiz id"
// @Param request body attemptRequest true "answer indices, one per question"
// @Success 200 {object} util.Response
// @Router /quizzes/{id}/attempt [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req attemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAttempt(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidID):
			util.BadRequest(ctx, "Invalid quiz ID")
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz not found")
		case errors.Is(err, util.ErrAnswerCount), errors.Is(err, util.ErrNoQuestions):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary My recent quiz results
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /quizzes/results [get]
func (c *QuizController) MyResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.ListRecentResults(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
