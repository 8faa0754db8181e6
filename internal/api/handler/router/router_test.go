package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func status(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRoutes(Route{
			Path:        "/v1/ads",
			Method:      http.MethodGet,
			Handler:     status(http.StatusOK),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
		}),
		WithFallbacks(status(http.StatusNotFound), status(http.StatusMethodNotAllowed)),
	)

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/v1/ads", expected: http.StatusOK},
		{name: "Método não permitido", method: http.MethodPost, path: "/v1/ads", expected: http.StatusMethodNotAllowed},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/nada", expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			rt.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expected, recorder.Code)
		})
	}

	assert.Equal(t, []string{"primeiro", "segundo"}, order)
}
