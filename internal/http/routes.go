package http

import (
	"todo_api/internal/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Accounts
	r.POST("/auth/login", h.Login)
	r.GET("/auths", h.GetAuths)
	r.GET("/auths/:id", h.GetAuth)
	r.POST("/auths", h.AddAuth)
	r.PATCH("/updateauth/:id", h.UpdateAuth)
	r.DELETE("/delete/:id", h.DeleteAuth)

	// Todos
	r.GET("/todos", h.GetTodos)
	r.GET("/todos/:id", h.GetTodo)
	r.GET("/auth/:id/todos", h.GetAuthTodos)
	r.POST("/auth/:id/todos", h.CreateTodo)
	r.PATCH("/updatetodo/:id", h.UpdateTodo)
	r.DELETE("/delete_todo/:id", h.DeleteTodo)
}
