//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	"github.com/atomospherebrand-bot/relese/internal/testutil/httptest"
	commandsmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/commands"
	queriesmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Update)
	s.router.PATCH("/bookings/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.GET("/availability", s.handler.Availability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func newBookingView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		ClientName:  "Анна",
		ClientPhone: "+79990000000",
		MasterID:    uuid.New(),
		MasterName:  "Иван",
		ServiceID:   uuid.New(),
		ServiceName: "Тату",
		Date:        "2025-10-23",
		Time:        "16:00",
		Duration:    30,
		Status:      string(booking.StatusPending),
		CreatedAt:   time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newCreateBookingRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ClientName:  "Анна",
		ClientPhone: "+79990000000",
		MasterID:    uuid.New(),
		ServiceID:   uuid.New(),
		Date:        "2025-10-23",
		Time:        "16:00",
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := newCreateBookingRequest()
	view := newBookingView()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, commands.SourceAdmin).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().NotNil(response.Booking)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("pending", response.Booking.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []testCaseBooking{
			{name: "missing field: clientName (required)", mutate: testutil.Field("clientName", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: clientPhone (required)", mutate: testutil.Field("clientPhone", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		}
		bound := []testCaseBooking{
			{name: "clientName too long (256 chars)", mutate: testutil.Field("clientName", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "masterId not a uuid", mutate: testutil.Field("masterId", "abc"), expectCode: http.StatusBadRequest},
		}
		for _, group := range [][]testCaseBooking{missing, bound} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
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
				name:           "slot occupied",
				commandsError:  errs.Kind(errs.ErrSlotOccupied, errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot occupied",
			},
			{
				name:           "service not found",
				commandsError:  errs.Kind(errs.ErrServiceNotFound, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "bad time",
				commandsError:  errs.Kind(schedule.ErrInvalidTime, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
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
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, commands.SourceAdmin).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := newBookingView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ClientName, response.Booking.ClientName)
		s.Equal("Тату", response.Booking.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.Kind(errs.ErrBookingNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: passes parsed filters", func() {
		masterID := uuid.New()
		from := schedule.MustParseDate("2025-10-01")
		to := schedule.MustParseDate("2025-10-31")
		status := booking.StatusConfirmed
		want := queries.BookingFilter{From: &from, To: &to, MasterID: &masterID, Status: &status, Limit: 10}

		s.mockQueries.EXPECT().List(gomock.Any(), want).
			Return([]*queries.BookingView{newBookingView()}, nil).Times(1)

		url := "/bookings?from=2025-10-01&to=2025-10-31&status=confirmed&limit=10&masterId=" + masterID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{}).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookings":[]}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on invalid filters", func() {
		for _, q := range []string{"from=23.10.2025", "to=tomorrow", "masterId=abc", "status=done", "limit=ten"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	view := newBookingView()
	url := "/bookings/" + view.ID.String()
	newTime := "17:00"
	reqBody := reqdto.UpdateBookingRequest{Time: &newTime}

	s.Run("success: returns 200 OK with merged booking", func() {
		updated := *view
		updated.Time = newTime
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).Return(&updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("17:00", response.Booking.Time)
	})

	s.Run("error: 409 Conflict when the new slot is taken", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).
			Return(nil, errs.Kind(errs.ErrSlotOccupied, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot occupied")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody).
			Return(nil, errs.Kind(errs.ErrBookingNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	view := newBookingView()
	url := "/bookings/" + view.ID.String() + "/status"
	reqBody := reqdto.UpdateBookingStatusRequest{Status: "confirmed"}

	s.Run("success: returns 200 OK", func() {
		confirmed := *view
		confirmed.Status = "confirmed"
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, reqBody).Return(&confirmed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Booking.Status)
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict on a rejected transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, reqBody).
			Return(nil, errs.Kind(booking.ErrStatusTransition, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 Not Found when nothing was removed", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(false, errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestAvailability() {
	masterID := uuid.New()
	serviceID := uuid.New()
	url := "/availability?masterId=" + masterID.String() + "&serviceId=" + serviceID.String() + "&date=2025-10-23"

	s.Run("success: returns slots", func() {
		s.mockAvailability.EXPECT().GetAvailableSlots(gomock.Any(), masterID, serviceID, "2025-10-23").
			Return([]string{"10:00", "10:30", "16:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"10:00", "10:30", "16:00"}, response.Slots)
	})

	s.Run("success: a fully booked day is an empty array", func() {
		s.mockAvailability.EXPECT().GetAvailableSlots(gomock.Any(), masterID, serviceID, "2025-10-23").
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"slots":[]}`, rec.Body.String())
	})

	s.Run("error: 404 for unknown service", func() {
		s.mockAvailability.EXPECT().GetAvailableSlots(gomock.Any(), masterID, serviceID, "2025-10-23").
			Return(nil, errs.Kind(errs.ErrServiceNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 400 when a parameter is missing", func() {
		for _, q := range []string{
			"serviceId=" + serviceID.String() + "&date=2025-10-23",
			"masterId=" + masterID.String() + "&date=2025-10-23",
			"masterId=" + masterID.String() + "&serviceId=" + serviceID.String(),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "issing")
		}
	})
}
