package controller

import (
	"net/http"

	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthController struct {
	Client *mongo.Client
}

func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{Client: client}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Client.Ping(ctx.Request.Context(), readpref.Primary()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	util.Success(ctx, gin.H{"status": "running"})
}
