package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/service"
	"github.com/realestate-api/internal/validate"
	"github.com/realestate-api/pkg/response"
)

// UserHandler handles user API requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignUp handles account creation
// POST /user_signup
func (h *UserHandler) SignUp(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	user, err := h.userService.SignUp(payload)
	if err != nil {
		var missing *validate.MissingFieldError
		if errors.As(err, &missing) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"message":  "User added successfully",
	})
}

// SignIn handles credential verification
// POST /user_signin
func (h *UserHandler) SignIn(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	if err := h.userService.SignIn(payload); err != nil {
		var missing *validate.MissingFieldError
		if errors.As(err, &missing) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Login successful"})
}

// ListAll returns every user, passwords excluded
// GET /get_all_users
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	list := make([]gin.H, len(users))
	for i, user := range users {
		list[i] = gin.H{
			"username": user.Username,
			"email":    user.Email,
		}
	}

	response.Success(c, gin.H{"users": list})
}

// Update handles partial user updates
// PATCH /update_user/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	user, err := h.userService.Update(id, payload)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"message":  "User updated successfully",
	})
}

// Delete removes a user
// DELETE /delete_user/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":      id,
		"message": "User deleted successfully",
	})
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/user_signup", h.SignUp)
	r.POST("/user_signin", h.SignIn)
	r.GET("/get_all_users", h.ListAll)
	r.PATCH("/update_user/:id", h.Update)
	r.DELETE("/delete_user/:id", h.Delete)
}
