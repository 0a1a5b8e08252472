package handlers

import (
	"net/http"

	"todo_api/internal/domain"
	"todo_api/internal/validation"

	"github.com/gin-gonic/gin"
)

const authNameRequired = "Auth name is required!"

// Login fetches the account by email and compares the submitted password
// against password1 verbatim. Unknown email and wrong password are both
// answered 401 with an empty body.
func (h *Handler) Login(c *gin.Context) {
	var req domain.Login
	if err := c.BindJSON(&req); err != nil {
		return
	}

	auth, err := h.AuthRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	if req.Password != auth.Password1 {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, auth)
}

func (h *Handler) GetAuths(c *gin.Context) {
	auths, err := h.AuthRepo.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to get auths")
		return
	}
	if auths == nil {
		auths = []*domain.Auth{}
	}
	c.JSON(http.StatusOK, auths)
}

func (h *Handler) GetAuth(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to get auth")
		return
	}

	auth, err := h.AuthRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to get auth")
		return
	}
	c.JSON(http.StatusOK, auth)
}

// AddAuth validates the account name before any statement executes; a
// validation failure is answered 200 with a fixed plain-text message.
func (h *Handler) AddAuth(c *gin.Context) {
	var body domain.Auth
	if err := c.BindJSON(&body); err != nil {
		return
	}

	if errs := validation.Check(&body); len(errs) > 0 {
		c.String(http.StatusOK, authNameRequired)
		return
	}

	if err := h.AuthRepo.Create(c.Request.Context(), &body); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create auth")
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) UpdateAuth(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to update auth")
		return
	}

	var body domain.Auth
	if err := c.BindJSON(&body); err != nil {
		return
	}

	if errs := validation.Check(&body); len(errs) > 0 {
		c.String(http.StatusOK, authNameRequired)
		return
	}

	res, err := h.AuthRepo.Update(c.Request.Context(), id, &body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to update auth")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteAuth(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to delete auth")
		return
	}

	res, err := h.AuthRepo.Delete(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete auth")
		return
	}
	c.JSON(http.StatusOK, res)
}
