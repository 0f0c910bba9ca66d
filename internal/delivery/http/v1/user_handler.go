package v1

import (
	"errors"
	"net/http"
	"strconv"

	"user-directory/internal/delivery/http/response"
	"user-directory/internal/domain"
	"user-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userListUC domain.UserListUsecase
}

// NewUserHandler registers the user list routes
func NewUserHandler(public *gin.RouterGroup, userListUC domain.UserListUsecase) {
	handler := &UserHandler{
		userListUC: userListUC,
	}

	public.GET("/users", handler.ListUsers)
	public.DELETE("/users/:id", handler.DeleteUser)
}

// ListUsers godoc
// @Summary      List Users
// @Description  Fetches the users from the backend and returns the list view state.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserListState}
// @Failure      502  {object}  response.Response{error=domain.UserListState}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	state, err := h.userListUC.Load(c.Request.Context())
	if err != nil {
		appErr := apperror.BadGateway("Failed to load users", err)
		appErr.Details = state
		c.Error(appErr)
		return
	}

	response.Success(c, http.StatusOK, "Users loaded", state)
}

// DeleteUser godoc
// @Summary      Delete User
// @Description  Deletes a user on the backend and returns the re-fetched list view state.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.UserListState}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid user id"))
		return
	}

	state, err := h.userListUC.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("User not found"))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", state)
}
