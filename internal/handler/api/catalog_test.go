//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	"github.com/atomospherebrand-bot/relese/internal/testutil/httptest"
	commandsmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/commands"
	queriesmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/masters", s.handler.ListMasters)
	s.router.POST("/masters", s.handler.CreateMaster)
	s.router.GET("/masters/:id", s.handler.GetMaster)
	s.router.PUT("/masters/:id", s.handler.UpdateMaster)
	s.router.DELETE("/masters/:id", s.handler.DeleteMaster)
	s.router.GET("/services", s.handler.ListServices)
	s.router.POST("/services", s.handler.CreateService)
	s.router.GET("/services/:id", s.handler.GetService)
	s.router.PUT("/services/:id", s.handler.UpdateService)
	s.router.DELETE("/services/:id", s.handler.DeleteService)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListMasters() {
	masters := []*queries.MasterView{{ID: uuid.New(), Name: "Иван", Nickname: "ink", IsActive: false}}

	s.Run("admin list includes inactive masters by default", func() {
		s.mockQueries.EXPECT().ListMasters(gomock.Any(), true).Return(masters, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/masters", nil, "")

		var response resdto.MasterListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Masters, 1)
	})

	s.Run("includeInactive=false hides them", func() {
		s.mockQueries.EXPECT().ListMasters(gomock.Any(), false).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/masters?includeInactive=false", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"masters":[]}`, rec.Body.String())
	})
}

func (s *CatalogHandlerTestSuite) TestCreateMaster() {
	reqBody := reqdto.CreateMasterRequest{Name: "Иван", Nickname: "ink", Specialization: "blackwork"}

	s.Run("success: returns 201 Created", func() {
		view := &queries.MasterView{ID: uuid.New(), Name: "Иван", Nickname: "ink", IsActive: true}
		s.mockCommands.EXPECT().CreateMaster(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/masters", reqBody, "")

		var response resdto.MasterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.Master.ID)
		s.True(response.Master.IsActive)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"name", "nickname"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/masters", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestGetMaster() {
	id := uuid.New()

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetMaster(gomock.Any(), id).
			Return(nil, errs.Kind(errs.ErrMasterNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/masters/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Master not found")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateMaster() {
	id := uuid.New()
	inactive := false
	reqBody := reqdto.UpdateMasterRequest{IsActive: &inactive}

	s.mockCommands.EXPECT().UpdateMaster(gomock.Any(), id, reqBody).
		Return(&queries.MasterView{ID: id, Name: "Иван", IsActive: false}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/masters/"+id.String(), reqBody, "")

	var response resdto.MasterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.False(response.Master.IsActive)
}

func (s *CatalogHandlerTestSuite) TestDeleteMaster() {
	id := uuid.New()
	url := "/masters/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteMaster(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().DeleteMaster(gomock.Any(), id).
			Return(errs.Kind(errs.ErrMasterNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Master not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateService() {
	reqBody := reqdto.CreateServiceRequest{Name: "Тату", Duration: 120, Price: 5000}

	s.Run("success: returns 201 Created", func() {
		view := &queries.ServiceView{ID: uuid.New(), Name: "Тату", Duration: 120, Price: 5000}
		s.mockCommands.EXPECT().CreateService(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", reqBody, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(120, response.Service.Duration)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "zero duration", mutate: testutil.Field("duration", 0)},
			{name: "negative price", mutate: testutil.Field("price", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestDeleteService() {
	id := uuid.New()

	s.Run("error: 409 Conflict while bookings reference the service", func() {
		s.mockCommands.EXPECT().DeleteService(gomock.Any(), id).
			Return(errs.Kind(errs.New("service is used by bookings"), errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Service is used by bookings")
	})
}
