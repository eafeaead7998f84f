package handlers

import (
	"errors"
	"net/http"

	"qaforum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService *services.UserService
	debug       bool
}

func NewUserHandler(userService *services.UserService, debug bool) *UserHandler {
	return &UserHandler{
		userService: userService,
		debug:       debug,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		storeFailure(c, "Cannot get users. ", err, h.debug)
		return
	}

	rows := make([]map[string]string, 0, len(users))
	for i := range users {
		rows = append(rows, users[i].RowMap())
	}
	c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Cannot find this person id.")
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Cannot find this person id.")
			return
		}
		storeFailure(c, "Cannot get user. ", err, h.debug)
		return
	}

	c.JSON(http.StatusOK, user.RowMap())
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	name := c.PostForm("username")
	if name == "" {
		fail(c, http.StatusForbidden, "Cannot insert user. Missing username.")
		return
	}

	taken, err := h.userService.UsernameTaken(name)
	if err != nil {
		storeFailure(c, "Cannot put user. ", err, h.debug)
		return
	}
	if taken {
		fail(c, http.StatusForbidden, "Username exits.")
		return
	}

	if err := h.userService.Create(name); err != nil {
		storeFailure(c, "Cannot put user. ", err, h.debug)
		return
	}
	success(c)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	newName := c.PostForm("username")
	if newName == "" {
		fail(c, http.StatusForbidden, "Cannot update user. Missing username.")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusForbidden, "No such user.")
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusForbidden, "No such user.")
			return
		}
		storeFailure(c, "Cannot update user. ", err, h.debug)
		return
	}

	taken, err := h.userService.UsernameTakenByOther(newName, user.ID)
	if err != nil {
		storeFailure(c, "Cannot update user. ", err, h.debug)
		return
	}
	if taken {
		fail(c, http.StatusForbidden, "User name exists.")
		return
	}

	if err := h.userService.Rename(user, newName); err != nil {
		storeFailure(c, "Cannot update user. ", err, h.debug)
		return
	}
	success(c)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusForbidden, "User doesn't exist.")
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusForbidden, "User doesn't exist.")
			return
		}
		storeFailure(c, "Cannot delete user. ", err, h.debug)
		return
	}

	if err := h.userService.Delete(user); err != nil {
		storeFailure(c, "Cannot delete user. ", err, h.debug)
		return
	}
	success(c)
}
