//go:build unit

package api_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/infra/excel"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil/httptest"
	commandsmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/commands"
	queriesmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	mockImports *commandsmock.MockImportCommands
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.mockImports = commandsmock.NewMockImportCommands(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries, s.mockImports)

	s.router.GET("/clients", s.handler.Clients)
	s.router.GET("/dashboard", s.handler.Dashboard)
	s.router.GET("/stats", s.handler.Stats)
	s.router.GET("/excel/export", s.handler.Export)
	s.router.POST("/excel/import", s.handler.Import)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestClients() {
	s.mockQueries.EXPECT().Clients(gomock.Any(), "анна").
		Return([]*queries.ClientSummary{{Name: "Анна", Phone: "+7000", Bookings: 2, LastVisit: "2025-10-23"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clients?q=анна", nil, "")

	var response resdto.ClientListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Clients, 1)
	s.Equal(2, response.Clients[0].Bookings)
}

func (s *ReportHandlerTestSuite) TestDashboard() {
	s.mockQueries.EXPECT().Dashboard(gomock.Any()).Return(&queries.Dashboard{
		Stats:          queries.DashboardStats{BookingsToday: 3, ActiveMasters: 2},
		RecentBookings: []*queries.BookingView{},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "")

	var response queries.Dashboard
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(3, response.Stats.BookingsToday)
}

func (s *ReportHandlerTestSuite) TestStats() {
	s.mockQueries.EXPECT().Stats(gomock.Any()).
		Return(nil, errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}

func (s *ReportHandlerTestSuite) TestExport() {
	s.Run("success: returns a workbook attachment", func() {
		from := schedule.MustParseDate("2025-10-01")
		rows := []*queries.BookingView{newBookingView()}
		s.mockQueries.EXPECT().ExportRows(gomock.Any(), &from, nil).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/excel/export?from=2025-10-01", nil, "")

		s.Require().Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        excel.ContentType,
			"Content-Disposition": "attachment; filename=bookings.xlsx",
		})

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		defer f.Close()
		got, err := f.GetRows(excel.SheetBookings)
		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("error: 400 on invalid date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/excel/export?to=31.10.2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid to")
	})
}

func (s *ReportHandlerTestSuite) TestImport() {
	s.Run("success: reports imported and skipped rows", func() {
		result := &commands.ImportResult{
			Imported: 1,
			Skipped:  1,
			Errors:   []commands.ImportError{{Row: 3, Message: "Slot occupied, choose another time"}},
		}
		s.mockImports.EXPECT().ImportBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, r io.Reader) (*commands.ImportResult, error) {
				b, err := io.ReadAll(r)
				s.Require().NoError(err)
				s.Equal("xlsx-bytes", string(b))
				return result, nil
			}).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, "/excel/import",
			httptest.File{Field: "file", Name: "bookings.xlsx", ContentType: excel.ContentType, Content: []byte("xlsx-bytes")},
		)

		var response commands.ImportResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(*result, response)
	})

	s.Run("error: 400 for an unreadable workbook", func() {
		s.mockImports.EXPECT().ImportBookings(gomock.Any(), gomock.Any()).
			Return(nil, errs.Kind(excel.ErrNoSheet, errs.ErrValidation)).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, "/excel/import",
			httptest.File{Field: "file", Name: "bookings.xlsx", Content: []byte("junk")},
		)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Workbook has no sheets")
	})

	s.Run("error: 400 without file", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/excel/import", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "File is required")
	})
}
