package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/infrastructure/auth"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := newTestJWTManager()
	user := &domain.User{
		ID:    "user-1",
		Email: "ana@example.com",
		Name:  "Ana",
		Role:  domain.RoleOperator,
	}

	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Run("valid token puts user in context", func(t *testing.T) {
		var got *domain.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = GetUserFromContext(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(jwtManager)(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if got == nil || got.ID != "user-1" || got.Role != domain.RoleOperator {
			t.Fatalf("unexpected user in context: %+v", got)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		})).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
		req.Header.Set("Authorization", "Token "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		})).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()

		AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		})).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		userRole domain.Role
		minRole  domain.Role
		expected int
	}{
		{"admin passes admin gate", domain.RoleAdmin, domain.RoleAdmin, http.StatusOK},
		{"operator fails admin gate", domain.RoleOperator, domain.RoleAdmin, http.StatusForbidden},
		{"admin passes operator gate", domain.RoleAdmin, domain.RoleOperator, http.StatusOK},
		{"operator passes operator gate", domain.RoleOperator, domain.RoleOperator, http.StatusOK},
		{"viewer fails operator gate", domain.RoleViewer, domain.RoleOperator, http.StatusForbidden},
		{"viewer passes viewer gate", domain.RoleViewer, domain.RoleViewer, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{ID: "user-1", Role: tt.userRole}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
			req = req.WithContext(context.WithValue(req.Context(), UserContextKey, user))
			rr := httptest.NewRecorder()

			RequireRole(tt.minRole)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rr, req)

			if rr.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rr.Code)
			}
		})
	}

	t.Run("missing user is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cuts", nil)
		rr := httptest.NewRecorder()

		RequireRole(domain.RoleViewer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		})).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})
}
