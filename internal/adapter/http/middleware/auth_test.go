package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"easydrive_booking/internal/usecase/interfaces"
	mock_interfaces "easydrive_booking/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should store identity and continue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)

		provider.EXPECT().Resolve(gomock.Any(), "token-abc").Return(interfaces.Identity{UserID: "user-1"}, nil)

		r := gin.New()
		r.GET("/x", RequireAuth(provider), func(c *gin.Context) {
			id, ok := CurrentIdentity(c)
			if !ok || id.UserID != "user-1" {
				t.Errorf("expected identity in context, got %+v ok=%v", id, ok)
			}
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("should reject missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)

		r := gin.New()
		r.GET("/x", RequireAuth(provider), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("should reject failed resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)

		provider.EXPECT().Resolve(gomock.Any(), "bad").Return(interfaces.Identity{}, errors.New("expired"))

		r := gin.New()
		r.GET("/x", RequireAuth(provider), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should allow staff", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			SetIdentity(c, interfaces.Identity{UserID: "staff-1", Staff: true})
		}, RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("should reject non-staff", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			SetIdentity(c, interfaces.Identity{UserID: "user-1"})
		}, RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("should reject missing identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := bearerToken("bearer abc"); got != "abc" {
		t.Fatalf("expected case-insensitive scheme, got %q", got)
	}
	if got := bearerToken("Basic abc"); got != "" {
		t.Fatalf("expected empty for wrong scheme, got %q", got)
	}
	if got := bearerToken(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
