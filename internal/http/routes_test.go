package http

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, nil, "test")

	want := map[string]bool{
		"POST /auth/login":        false,
		"GET /auths":              false,
		"GET /auths/:id":          false,
		"POST /auths":             false,
		"PATCH /updateauth/:id":   false,
		"DELETE /delete/:id":      false,
		"GET /todos":              false,
		"GET /todos/:id":          false,
		"GET /auth/:id/todos":     false,
		"POST /auth/:id/todos":    false,
		"PATCH /updatetodo/:id":   false,
		"DELETE /delete_todo/:id": false,
	}

	for _, ri := range r.Routes() {
		key := ri.Method + " " + ri.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}

	for key, found := range want {
		if !found {
			t.Errorf("route %s not registered", key)
		}
	}
}
