//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	h        *apiHarness
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newAPIHarness(s.T(), s.mockCtrl)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestUpdateMe() {
	url := "/api/users/me"

	s.Run("success: updates and returns the fresh profile", func() {
		updated := builder.NewUserBuilder().WithID(customerID).WithName("Renamed").BuildView()
		s.h.profileCmds.EXPECT().UpdateProfile(gomock.Any(), customerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req commands.UpdateProfileRequest) error {
				s.Require().NotNil(req.Name)
				s.Equal("Renamed", *req.Name)
				s.Nil(req.NewPassword)
				return nil
			}).Times(1)
		s.h.users.EXPECT().GetCurrentUser(gomock.Any(), customerID).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPut, url,
			map[string]any{"name": "Renamed"}, s.h.customerToken(s.T()))

		var response resdto.Envelope[resdto.UserResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Renamed", response.Data.Name)
	})

	s.Run("error: 400 when the current password is wrong", func() {
		s.h.profileCmds.EXPECT().UpdateProfile(gomock.Any(), customerID, gomock.Any()).
			Return(commands.ErrInvalidCurrentPassword).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPut, url,
			map[string]any{"currentPassword": "wrongpass", "newPassword": "newpassword1"}, s.h.customerToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "current password is incorrect")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.h.profileCmds.EXPECT().UpdateProfile(gomock.Any(), customerID, gomock.Any()).
			Return(commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPut, url,
			map[string]any{"email": "taken@example.com"}, s.h.customerToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})

	s.Run("error: 400 on a short new password", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPut, url,
			map[string]any{"currentPassword": "password123", "newPassword": "short"}, s.h.customerToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestLoginLogs() {
	s.Run("success: passes the limit through", func() {
		s.h.users.EXPECT().ListLoginLogs(gomock.Any(), customerID, int32(5)).Return([]*queries.LoginLogView{
			{ID: 1, UserID: customerID, IPAddress: "192.0.2.1", UserAgent: "curl/8", LoginTime: time.Now()},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/users/me/login-logs?limit=5", nil, s.h.customerToken(s.T()))

		var response resdto.Envelope[[]resdto.LoginLogResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Data, 1)
		s.Equal("192.0.2.1", response.Data[0].IPAddress)
	})
}

func (s *UserHandlerTestSuite) TestDashboard() {
	s.Run("success: customer sees own counts", func() {
		actor := shared.Actor{ID: customerID, Role: user.RoleCustomer}
		s.h.dashboard.EXPECT().Stats(gomock.Any(), actor).
			Return(&queries.DashboardStats{TotalBookings: 4, CanceledBookings: 1, CompletedBookings: 2, UpcomingBookings: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/dashboard", nil, s.h.customerToken(s.T()))

		var response resdto.Envelope[resdto.DashboardResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4, response.Data.TotalBookings)
		s.Equal(1, response.Data.UpcomingBookings)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
