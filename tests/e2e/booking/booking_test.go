//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	salonsURL       = "/api/salons"
	appointmentsURL = "/api/appointments"
	dashboardURL    = "/api/dashboard"
	ownerListURL    = "/api/admin/appointments"
)

type bookingSuite struct {
	e2e.SharedSuite

	ownerID     int64
	ownerToken  string
	customerID  int64
	customerTok string
	salonID     int64
	date        string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.ownerID, s.ownerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "admin")
	s.customerID, s.customerTok = authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "user")
	s.salonID = dbtest.CreateTestSalon(t, s.DB, dbtest.DefaultSalon(s.ownerID))
	s.date = time.Now().AddDate(0, 0, 7).Format(time.DateOnly)
}

func (s *bookingSuite) book(token, slot string, headers map[string]string) (int, string) {
	body := request.BookAppointmentRequest{SalonID: s.salonID, Date: s.date, Time: slot}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, appointmentsURL, body, token, headers)
	return w.Code, w.Body.String()
}

func (s *bookingSuite) TestSalonLifecycle() {
	s.Run("owner creates a salon and customers see its slots", func() {
		t := s.T()
		body := request.CreateSalonRequest{
			Name:               "Glow Studio",
			City:               "Springfield",
			WorkingDays:        []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			StartTime:          "09:00",
			EndTime:            "13:00",
			BreakStartTime:     ptr("11:00"),
			BreakEndTime:       ptr("12:00"),
			SlotDuration:       60,
			MaxBookingsPerSlot: 1,
			MaxServicePrice:    80,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salonsURL, body, s.ownerToken)
		var created resdto.Envelope[resdto.SalonResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, s.ownerID, created.Data.OwnerID)

		path := fmt.Sprintf("%s/%d/slots?date=%s", salonsURL, created.Data.ID, s.date)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		var slots resdto.Envelope[resdto.SlotsResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		require.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM"}, slots.Data.Slots)
	})

	s.Run("customers cannot create salons", func() {
		t := s.T()
		body := request.CreateSalonRequest{Name: "Nope", WorkingDays: []string{"monday"}, StartTime: "09:00", EndTime: "10:00", SlotDuration: 30, MaxBookingsPerSlot: 1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salonsURL, body, s.customerTok)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("salon with upcoming bookings cannot be deleted", func() {
		t := s.T()
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "10:00 AM", "booked")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", salonsURL, s.salonID), nil, s.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *bookingSuite) TestBook() {
	s.Run("booking succeeds and lowers availability", func() {
		t := s.T()
		code, body := s.book(s.customerTok, "10:00 AM", nil)
		require.Equal(t, http.StatusCreated, code, body)

		path := fmt.Sprintf("%s/%d/availability?date=%s&time=%s", salonsURL, s.salonID, s.date, "10:00%20AM")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		var avail resdto.Envelope[resdto.AvailabilityResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, 2, avail.Data.Capacity)
		require.Equal(t, 1, avail.Data.RemainingSlots)
	})

	s.Run("replayed idempotency key returns the first appointment", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		body := request.BookAppointmentRequest{SalonID: s.salonID, Date: s.date, Time: "9:00 AM"}
		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, appointmentsURL, body, s.customerTok, headers)
		var created resdto.Envelope[resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, appointmentsURL, body, s.customerTok, headers)
		var replayed resdto.Envelope[resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
		require.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
		require.Equal(t, created.Data.ID, replayed.Data.ID)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM appointments").Scan(&count))
		require.Equal(t, 1, count)
	})

	s.Run("same key with a different body conflicts", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		code, body := s.book(s.customerTok, "9:00 AM", headers)
		require.Equal(t, http.StatusCreated, code, body)
		code, body = s.book(s.customerTok, "11:00 AM", headers)
		require.Equal(t, http.StatusConflict, code, body)
	})

	s.Run("full slot is rejected", func() {
		t := s.T()
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "11:00 AM", "booked")
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "11:00 AM", "booked")

		body := request.BookAppointmentRequest{SalonID: s.salonID, Date: s.date, Time: "11:00 AM"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, s.customerTok)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No available slots")
	})

	s.Run("concurrent bookings never exceed capacity", func() {
		t := s.T()
		const attempts = 8

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				code, _ := s.book(s.customerTok, "10:00 AM", nil)
				if code == http.StatusCreated {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 2, created)
		var stored int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM appointments WHERE salon_id = $1 AND date = $2 AND time = '10:00 AM'",
			s.salonID, s.date).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 2, stored)
	})

	s.Run("maintenance mode blocks booking", func() {
		t := s.T()
		dbtest.SetMaintenanceMode(t, s.DB, true)

		body := request.BookAppointmentRequest{SalonID: s.salonID, Date: s.date, Time: "9:00 AM"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, s.customerTok)
		httptest.AssertErrorResponse(t, w, http.StatusServiceUnavailable, "Service is under maintenance")
	})

	s.Run("slot that the salon does not offer is invalid", func() {
		t := s.T()
		code, body := s.book(s.customerTok, "3:00 PM", nil)
		require.Equal(t, http.StatusBadRequest, code, body)
	})

	s.Run("past date is invalid", func() {
		t := s.T()
		body := request.BookAppointmentRequest{SalonID: s.salonID, Date: "2000-01-01", Time: "9:00 AM"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, s.customerTok)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestStatus() {
	s.Run("customer cancels their booking and the slot stays counted", func() {
		t := s.T()
		id := dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "9:00 AM", "booked")

		path := fmt.Sprintf("%s/%d/status", appointmentsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateStatusRequest{Status: "canceled"}, s.customerTok)
		var res resdto.Envelope[resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "canceled", res.Data.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateStatusRequest{Status: "completed"}, s.customerTok)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("owner completes an appointment in their salon", func() {
		t := s.T()
		id := dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "10:00 AM", "booked")

		path := fmt.Sprintf("%s/%d/status", appointmentsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateStatusRequest{Status: "completed"}, s.ownerToken)
		var res resdto.Envelope[resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "completed", res.Data.Status)
	})

	s.Run("another customer cannot touch the booking", func() {
		t := s.T()
		id := dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "10:00 AM", "booked")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "user")

		path := fmt.Sprintf("%s/%d/status", appointmentsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateStatusRequest{Status: "canceled"}, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", appointmentsURL, id), nil, otherToken)
		require.Contains(t, []int{http.StatusForbidden, http.StatusNotFound}, w.Code)
	})
}

func (s *bookingSuite) TestListingsAndDashboard() {
	s.Run("lists and stats reflect stored appointments", func() {
		t := s.T()
		past := time.Now().AddDate(0, 0, -3).Format(time.DateOnly)
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "9:00 AM", "booked")
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, s.date, "10:00 AM", "canceled")
		dbtest.CreateTestAppointment(t, s.DB, s.customerID, s.salonID, s.ownerID, past, "9:00 AM", "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, s.customerTok)
		var mine resdto.Envelope[[]resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine.Data, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ownerListURL+"?status=booked", nil, s.ownerToken)
		var owned resdto.Envelope[[]resdto.AppointmentResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &owned)
		require.Len(t, owned.Data, 1)
		require.Equal(t, "Blue Lotus Spa", owned.Data[0].Salon.Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, s.customerTok)
		var stats resdto.Envelope[resdto.DashboardResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, resdto.DashboardResponse{
			TotalBookings:     3,
			CanceledBookings:  1,
			CompletedBookings: 1,
			UpcomingBookings:  1,
		}, stats.Data)
	})
}

func ptr(s string) *string { return &s }
