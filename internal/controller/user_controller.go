package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User registration data"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ApiResponse "Invalid body or duplicate email"
// @Router /auth/user [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateUser: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	user, err := c.userService.CreateUser(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags Auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ApiResponse "User not found"
// @Router /auth/user/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.userService.GetUser(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUsersByRole godoc
// @Summary List users with a given role
// @Tags Auth
// @Produce json
// @Param role query string true "Role (ADMIN or AUDITOR)"
// @Success 200 {array} dto.UserResponse
// @Router /auth/user/byRole [get]
func (c *UserController) GetUsersByRole(ctx *gin.Context) {
	role := ctx.Query("role")
	if role == "" {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Missing role query parameter"})
		return
	}
	users, err := c.userService.GetUsersByRole(role)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}
