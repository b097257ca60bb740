package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filedrop-api/internal/application/ports"
	"filedrop-api/internal/application/services"
	domain "filedrop-api/internal/domain/user"
	"filedrop-api/internal/interface/api/rest/dto/auth"
)

func newRouterWithController(t *testing.T, us ports.UserService, as ports.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ac := &AuthController{
		logger:      zap.NewNop(),
		userService: us,
		authService: as,
	}
	r.POST("/signup", ac.SignupHandler)
	r.POST("/login", ac.LoginHandler)
	return r
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthController_SignupHandler(t *testing.T) {
	uid := uuid.New()

	tests := []struct {
		name   string
		body   any
		signup func(ctx context.Context, u domain.User, password string) (*domain.User, error)
		want   int
		check  func(t *testing.T, resp map[string]any)
	}{
		{
			name:   "invalid JSON",
			body:   "{bad json",
			signup: func(ctx context.Context, u domain.User, password string) (*domain.User, error) { return nil, nil },
			want:   http.StatusBadRequest,
		},
		{
			name: "persistence failure -> 500",
			body: auth.SignupRequest{FullName: "Ann", Email: "a@x.com", Password: "secret1"},
			signup: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, errors.New("db down")
			},
			want: http.StatusInternalServerError,
		},
		{
			name: "empty fields accepted",
			body: auth.SignupRequest{},
			signup: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return &domain.User{UUID: uid}, nil
			},
			want: http.StatusCreated,
		},
		{
			name: "success, no password material in response",
			body: auth.SignupRequest{FullName: "Ann", Email: "a@x.com", Password: "secret1"},
			signup: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				hash := "$2a$10$should-never-leak"
				return &domain.User{UUID: uid, FullName: u.FullName, Email: u.Email, PasswordHash: &hash}, nil
			},
			want: http.StatusCreated,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, uid.String(), resp["uuid"])
				assert.Equal(t, "Ann", resp["full_name"])
				assert.NotContains(t, resp, "password")
				assert.NotContains(t, resp, "password_hash")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{
				SignupFunc:      tt.signup,
				FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) { return nil, errors.New("not used") },
			}
			as := &fakeAuthService{GenerateTokenFunc: func(u *domain.User, password string) (string, error) { return "", errors.New("not used") }}

			r := newRouterWithController(t, us, as)
			rr := doPOST(t, r, "/signup", tt.body)
			require.Equal(t, tt.want, rr.Code)

			if tt.check != nil {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				tt.check(t, resp)
			}
			// plaintext never echoes back
			assert.NotContains(t, rr.Body.String(), "secret1")
		})
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	uid := uuid.New()

	type fields struct {
		findByEmail   func(ctx context.Context, email string) (*domain.User, error)
		generateToken func(u *domain.User, password string) (string, error)
	}
	type want struct {
		code   int
		jsonEq map[string]any
	}

	tests := []struct {
		name   string
		body   any
		fields fields
		want   want
	}{
		{
			name: "invalid JSON",
			body: "{bad json",
			fields: fields{
				findByEmail:   func(ctx context.Context, email string) (*domain.User, error) { return nil, nil },
				generateToken: func(u *domain.User, password string) (string, error) { return "", nil },
			},
			want: want{
				code:   http.StatusBadRequest,
				jsonEq: map[string]any{"error": "invalid json"},
			},
		},
		{
			name: "FindByEmail error -> 500",
			body: auth.LoginRequest{Email: "a@x.com", Password: "secret1"},
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return nil, errors.New("db error")
				},
				generateToken: func(u *domain.User, password string) (string, error) { return "", nil },
			},
			want: want{
				code:   http.StatusInternalServerError,
				jsonEq: map[string]any{"error": "failed to get a user"},
			},
		},
		{
			name: "unknown email -> 404 user not found",
			body: auth.LoginRequest{Email: "missing@x.com", Password: "secret1"},
			fields: fields{
				findByEmail:   func(ctx context.Context, email string) (*domain.User, error) { return nil, nil },
				generateToken: func(u *domain.User, password string) (string, error) { return "", nil },
			},
			want: want{
				code:   http.StatusNotFound,
				jsonEq: map[string]any{"error": "user not found"},
			},
		},
		{
			name: "wrong password -> 401 incorrect password",
			body: auth.LoginRequest{Email: "a@x.com", Password: "wrong"},
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{UUID: uid}, nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "", services.ErrInvalidCredentials
				},
			},
			want: want{
				code:   http.StatusUnauthorized,
				jsonEq: map[string]any{"error": "incorrect password"},
			},
		},
		{
			name: "token generation failure -> 500",
			body: auth.LoginRequest{Email: "a@x.com", Password: "secret1"},
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{UUID: uid}, nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "", services.ErrFailedToGenerateToken
				},
			},
			want: want{
				code: http.StatusInternalServerError,
			},
		},
		{
			name: "success -> token and user_id",
			body: auth.LoginRequest{Email: "a@x.com", Password: "secret1"},
			fields: fields{
				findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{UUID: uid}, nil
				},
				generateToken: func(u *domain.User, password string) (string, error) {
					return "tok_123", nil
				},
			},
			want: want{
				code:   http.StatusOK,
				jsonEq: map[string]any{"token": "tok_123", "user_id": uid.String()},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{
				FindByEmailFunc: tt.fields.findByEmail,
				SignupFunc:      func(ctx context.Context, u domain.User, password string) (*domain.User, error) { return nil, errors.New("not used") },
			}
			as := &fakeAuthService{GenerateTokenFunc: tt.fields.generateToken}

			r := newRouterWithController(t, us, as)
			rr := doPOST(t, r, "/login", tt.body)
			require.Equal(t, tt.want.code, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			for k, v := range tt.want.jsonEq {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
		})
	}
}
