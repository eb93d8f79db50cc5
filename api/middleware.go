package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quizzo-bot/utils"
)

// requestIDMiddleware tags every request for log correlation.
func requestIDMiddleware(ctx *gin.Context) {
	id := uuid.NewString()
	ctx.Set("request_id", id)
	ctx.Header("X-Request-Id", id)
	ctx.Next()
}

func requireValidTokenMiddleware(ctx *gin.Context) {
	key, ok := parseAuthHeader(ctx, "Bearer")
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if !utils.TokenHashEqual(utils.TokenHash(key), expectedTokenHash) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
}

func parseAuthHeader(ctx *gin.Context, type_ string) (string, bool) {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}

	if parts[0] != type_ {
		return "", false
	}

	return parts[1], true
}
