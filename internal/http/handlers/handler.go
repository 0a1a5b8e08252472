package handlers

import (
	"strconv"

	"todo_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB       *pgxpool.Pool
	AuthRepo *repository.AuthRepository
	TodoRepo *repository.TodoRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:       db,
		AuthRepo: repository.NewAuthRepository(db),
		TodoRepo: repository.NewTodoRepository(db),
	}
}

// pathID parses the :id path segment.
func pathID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}
