package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/model"
)

func TestAuthController_Signup(t *testing.T) {
	tests := []struct {
		name            string
		registerErr     error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			registerErr:     nil,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Registration successful. Please login.",
		},
		{
			name:            "duplicate_username",
			registerErr:     auctionerrors.ErrDuplicateUsername,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Username already exists",
		},
		{
			name:            "missing_fields",
			registerErr:     auctionerrors.ErrInvalidInput,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Username and password are required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuthService{
				registerFn: func(_ context.Context, username, _ string) (*model.User, error) {
					if tc.registerErr != nil {
						return nil, tc.registerErr
					}
					return &model.User{ID: 1, Username: username}, nil
				},
			}
			ctrl := NewAuthController(auth, zap.NewNop())

			req := newFormRequest(t, "/signup", url.Values{"username": {"alice"}, "password": {"hunter2"}})
			rec := httptest.NewRecorder()
			ctrl.Signup(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			require.Equal(t, tc.registerErr == nil, body["success"])
			require.Equal(t, tc.expectedMessage, body["message"])
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("invalid_credentials", func(t *testing.T) {
		auth := &stubAuthService{
			loginFn: func(context.Context, string, string) (*model.User, string, error) {
				return nil, "", auctionerrors.ErrInvalidCredentials
			},
		}
		ctrl := NewAuthController(auth, zap.NewNop())

		req := newFormRequest(t, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Invalid username or password", body["message"])
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("success_sets_session_cookie", func(t *testing.T) {
		auth := &stubAuthService{
			loginFn: func(_ context.Context, username, _ string) (*model.User, string, error) {
				return &model.User{ID: 7, Username: username}, "signed-token", nil
			},
		}
		ctrl := NewAuthController(auth, zap.NewNop())

		req := newFormRequest(t, "/login", url.Values{"username": {"alice"}, "password": {"hunter2"}})
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, true, body["success"])
		require.Equal(t, "Login successful", body["message"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "jwt", cookies[0].Name)
		require.Equal(t, "signed-token", cookies[0].Value)
		require.True(t, cookies[0].HttpOnly)
	})
}

func TestAuthController_Logout(t *testing.T) {
	ctrl := NewAuthController(&stubAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	ctrl.Logout(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "jwt", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
