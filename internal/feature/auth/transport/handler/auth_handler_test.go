package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"liveboard_backend/internal/feature/auth/domain/entity"
	"liveboard_backend/internal/feature/auth/transport/handler"
	"liveboard_backend/internal/feature/auth/usecase"
	jwtmw "liveboard_backend/internal/platform/jwt"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc               func(ctx context.Context, email, password string) error
	LoginFunc                func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc          func(ctx context.Context, userID uint) (*entity.User, error)
	DeleteAccountFunc        func(ctx context.Context, userID uint) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ConfirmPasswordResetFunc func(ctx context.Context, token, newPassword string) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	return m.SignupFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return m.CurrentUserFunc(ctx, userID)
}

func (m *mockAuthUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	return m.DeleteAccountFunc(ctx, userID)
}

func (m *mockAuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	return m.RequestPasswordResetFunc(ctx, email)
}

func (m *mockAuthUsecase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return m.ConfirmPasswordResetFunc(ctx, token, newPassword)
}

// newRouter はJWTミドルウェアの代わりにuserIDを直接注入するテスト用ルーターを組み立てます。
func newRouter(h *handler.AuthHandler, userID uint) *gin.Engine {
	router := gin.New()
	if userID != 0 {
		router.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, userID) })
	}
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.GET("/users/me", h.Me)
	router.DELETE("/users/me", h.DeleteMe)
	router.POST("/password-reset", h.RequestReset)
	router.PUT("/password-reset", h.ConfirmReset)
	return router
}

func postJSON(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// TestAuthHandler_Signup は登録APIのバインドとステータス変換をテストします。
func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockSignup     func(ctx context.Context, email, password string) error
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"test@example.com","password":"password123"}`,
			mockSignup: func(ctx context.Context, email, password string) error {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "password123", password)
				return nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "error: malformed email returns 400",
			body:           `{"email":"not-an-email","password":"password123"}`,
			mockSignup:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error: short password returns 400",
			body:           `{"email":"test@example.com","password":"12345"}`,
			mockSignup:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error: duplicate email returns 409",
			body: `{"email":"taken@example.com","password":"password123"}`,
			mockSignup: func(ctx context.Context, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignup}
			router := newRouter(handler.NewAuthHandler(mockUC), 0)

			w := postJSON(router, http.MethodPost, "/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestAuthHandler_Login はログインAPIのステータス変換とトークン返却をテストします。
func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockLogin      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns the signed token",
			body: `{"email":"test@example.com","password":"password123"}`,
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "signed.jwt.token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"signed.jwt.token"}`,
		},
		{
			name: "error: bad credentials return 401",
			body: `{"email":"test@example.com","password":"wrong"}`,
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid email or password"}`,
		},
		{
			name:           "error: missing password returns 400",
			body:           `{"email":"test@example.com"}`,
			mockLogin:      nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			router := newRouter(handler.NewAuthHandler(mockUC), 0)

			w := postJSON(router, http.MethodPost, "/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestAuthHandler_Me は自分自身の情報取得APIをテストします。
func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: password hash is not exposed", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				assert.Equal(t, uint(7), userID)
				return &entity.User{ID: 7, Email: "test@example.com", Nickname: "tester", Password: "secret-hash"}, nil
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"email":"test@example.com","nickname":"tester"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("error: unknown user returns 404", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestAuthHandler_DeleteMe はアカウント削除APIをテストします。
func TestAuthHandler_DeleteMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockDelete     func(ctx context.Context, userID uint) error
		expectedStatus int
	}{
		{
			name: "success",
			mockDelete: func(ctx context.Context, userID uint) error {
				assert.Equal(t, uint(7), userID)
				return nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error: unknown user returns 404",
			mockDelete:     func(ctx context.Context, userID uint) error { return usecase.ErrUserNotFound },
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "error: repository failure returns 500",
			mockDelete:     func(ctx context.Context, userID uint) error { return errors.New("db down") },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{DeleteAccountFunc: tt.mockDelete}
			router := newRouter(handler.NewAuthHandler(mockUC), 7)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, "/users/me", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestAuthHandler_PasswordReset はリセット要求と確定のAPIをテストします。
func TestAuthHandler_PasswordReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request: success", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RequestPasswordResetFunc: func(ctx context.Context, email string) error {
				assert.Equal(t, "test@example.com", email)
				return nil
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 0)

		w := postJSON(router, http.MethodPost, "/password-reset", `{"email":"test@example.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("request: unknown email returns 404", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			RequestPasswordResetFunc: func(ctx context.Context, email string) error {
				return usecase.ErrUserNotFound
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 0)

		w := postJSON(router, http.MethodPost, "/password-reset", `{"email":"ghost@example.com"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("confirm: success", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			ConfirmPasswordResetFunc: func(ctx context.Context, token, newPassword string) error {
				assert.Equal(t, "token-abc", token)
				assert.Equal(t, "newpassword", newPassword)
				return nil
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 0)

		w := postJSON(router, http.MethodPut, "/password-reset", `{"token":"token-abc","newPassword":"newpassword"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("confirm: invalid token returns 400", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			ConfirmPasswordResetFunc: func(ctx context.Context, token, newPassword string) error {
				return usecase.ErrInvalidResetToken
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 0)

		w := postJSON(router, http.MethodPut, "/password-reset", `{"token":"bogus","newPassword":"newpassword"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("confirm: short password returns 400 at binding", func(t *testing.T) {
		called := false
		mockUC := &mockAuthUsecase{
			ConfirmPasswordResetFunc: func(ctx context.Context, token, newPassword string) error {
				called = true
				return nil
			},
		}
		router := newRouter(handler.NewAuthHandler(mockUC), 0)

		w := postJSON(router, http.MethodPut, "/password-reset", `{"token":"token-abc","newPassword":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called, "usecase must not be reached on binding failure")
	})
}
