package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleUserError create a 400 response for error
func handleUserError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"reason": err.Error()})
}
