package handlers

import (
	"net/http"

	"todo_api/internal/domain"
	"todo_api/internal/logger"
	"todo_api/internal/validation"

	"github.com/gin-gonic/gin"
)

const todoTitleRequired = "Todo title is required!"

func (h *Handler) GetTodos(c *gin.Context) {
	todos, err := h.TodoRepo.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to get todos")
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

// GetAuthTodos lists the todos whose creator equals the account id in the
// path. The account itself is never looked up.
func (h *Handler) GetAuthTodos(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to get auth's todos")
		return
	}

	todos, err := h.TodoRepo.ListByCreator(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to get auth's todos")
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to get todo")
		return
	}

	todo, err := h.TodoRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to get todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	creator, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to create todo")
		return
	}

	var body domain.CreateUpdateTodo
	if err := c.BindJSON(&body); err != nil {
		return
	}

	if errs := validation.Check(&body); len(errs) > 0 {
		c.String(http.StatusOK, todoTitleRequired)
		return
	}

	todo, err := h.TodoRepo.Create(c.Request.Context(), creator, &body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to update todo")
		return
	}

	var body domain.CreateUpdateTodo
	if err := c.BindJSON(&body); err != nil {
		return
	}

	if errs := validation.Check(&body); len(errs) > 0 {
		c.String(http.StatusOK, todoTitleRequired)
		return
	}

	todo, err := h.TodoRepo.Update(c.Request.Context(), id, &body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to update todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a todo and echoes the deleted row. This is the one
// path that logs the raw store error before the generic response.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	todo, err := h.TodoRepo.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("error deleting todo", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "Failed to delete todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}
