package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/errorz"
)

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// respondServiceError maps service errors to HTTP. Not-found and conflict both
// surface as 400 with the structured envelope; only authentication failures
// get 401.
func respondServiceError(ctx *gin.Context, err error) {
	if errors.Is(err, errorz.ErrUnauthorized) {
		ctx.JSON(http.StatusUnauthorized, dto.ApiResponse{Success: false, Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: err.Error()})
}
