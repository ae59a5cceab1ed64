//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"salon-booking/internal/domain/user"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	h        *apiHarness
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newAPIHarness(s.T(), s.mockCtrl)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/api/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 with the new id", func() {
		s.h.authCmds.EXPECT().Register(gomock.Any(), reqBody.ToCommand()).Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, reqBody, "")

		var response resdto.Envelope[resdto.RegisterResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.Data.ID)
	})

	s.Run("success: role defaults to customer", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("role", nil))
		s.h.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.RegisterRequest) (int64, error) {
				s.Equal("user", req.Role)
				return 8, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "unknown role", mutate: testutil.Field("role", "owner"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "email taken", err: commands.ErrEmailTaken, expectedStatus: http.StatusConflict, expectedMsg: "email already registered"},
			{name: "registration closed", err: commands.ErrRegistrationClosed, expectedStatus: http.StatusForbidden, expectedMsg: "Registration is currently disabled"},
			{name: "unexpected", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.h.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).Return(int64(0), tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().WithID(customerID).BuildView()
	expectedToken := "test-jwt-token"

	expectLogin := func() {
		s.h.authCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.LoginRequest) (*commands.LoginResult, error) {
				s.NotEmpty(req.IPAddress)
				return &commands.LoginResult{UserID: returnUser.ID, Role: user.RoleCustomer, AccessToken: expectedToken}, nil
			}).Times(1)
		s.h.users.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil).Times(1)
	}

	s.Run("success: returns 200 OK and sets the token cookie", func() {
		expectLogin()
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, reqBody, "")

		var response resdto.Envelope[resdto.LoginResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.Data.Token)
		s.Equal(returnUser.Email, response.Data.User.Email)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(expectedToken, tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "role admin OK", mutate: testutil.Field("role", "admin"), expectCode: http.StatusOK},
			{name: "role unknown", mutate: testutil.Field("role", "owner"), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: role (required)", mutate: testutil.Field("role", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusOK {
						expectLogin()
					}
					rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email, password or role",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.h.authCmds.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 200 and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, "/api/auth/logout", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
		s.Less(tokenCookie.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"
	returnUser := builder.NewUserBuilder().WithID(customerID).BuildView()

	s.Run("success: returns current user info", func() {
		s.h.users.EXPECT().GetCurrentUser(gomock.Any(), customerID).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, url, nil, s.h.customerToken(s.T()))

		var response resdto.Envelope[resdto.UserResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Data.Email)
		s.Equal("user", response.Data.Role)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a tampered token", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, url, nil, s.h.customerToken(s.T())+"x")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "user not found", queryError: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "user not found"},
			{name: "user inactive", queryError: queries.ErrUserInactive, expectedStatus: http.StatusUnauthorized, expectedMsg: "Account is inactive"},
			{name: "internal server error", queryError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.h.users.EXPECT().GetCurrentUser(gomock.Any(), customerID).Return(nil, tc.queryError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, url, nil, s.h.customerToken(s.T()))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
