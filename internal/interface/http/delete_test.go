package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dailyforge/dailyforge-api/internal/application"
)

// Successful deletes reply 204 with an empty body, not a success envelope.
func TestDelete_NoContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		mount func(*gin.RouterGroup)
		path  string
	}{
		{
			name: "task",
			mount: func(g *gin.RouterGroup) {
				h := NewTaskHandler(application.NewTaskService(stubTaskRepo{}, nil), testLogger())
				g.DELETE("/tasks/:id", h.Delete)
			},
			path: "/api/tasks/t1",
		},
		{
			name: "expense",
			mount: func(g *gin.RouterGroup) {
				h := NewExpenseHandler(application.NewExpenseService(stubExpenseRepo{}), testLogger())
				g.DELETE("/expenses/:id", h.Delete)
			},
			path: "/api/expenses/e1",
		},
		{
			name: "habit",
			mount: func(g *gin.RouterGroup) {
				h := NewHabitHandler(application.NewHabitService(stubHabitRepo{}), testLogger())
				g.DELETE("/habits/:id", h.Delete)
			},
			path: "/api/habits/h1",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			api := r.Group("/api", func(c *gin.Context) { c.Set("userID", "user-1") })
			tc.mount(api)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tc.path, nil))
			if w.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
			}
			if w.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %q", w.Body.String())
			}
		})
	}
}
