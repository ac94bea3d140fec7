//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/httptest"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/services", s.handler.ListServices)
	s.router.GET("/professionals", s.handler.ListProfessionals)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListServices_Success() {
	desc := "Professional haircut with styling"
	views := []*queries.ServiceView{
		{ID: uuid.New(), Name: "Haircut & Styling", Description: &desc, DurationMinutes: 45, PriceCents: 3500},
		{ID: uuid.New(), Name: "Manicure", DurationMinutes: 60, PriceCents: 2500},
	}
	s.mockQueries.EXPECT().ListServices(gomock.Any()).Return(views, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil)

	var resp []resdto.ServiceResponse
	httptest.AssertSuccessEnvelope(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 2)
	s.Equal("Haircut & Styling", resp[0].Name)
	s.Equal(int32(45), resp[0].DurationMinutes)
	s.Equal(int32(3500), resp[0].PriceCents)
}

func (s *CatalogHandlerTestSuite) TestListServices_Failure() {
	s.mockQueries.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db down"))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil)
	httptest.AssertErrorEnvelope(s.T(), w, http.StatusInternalServerError, "Internal server error")
}

func (s *CatalogHandlerTestSuite) TestListProfessionals_Success() {
	views := []*queries.ProfessionalView{
		{
			ID:    uuid.New(),
			Name:  "Maria Silva",
			Email: "maria@beauty.com",
			Services: []queries.ServiceView{
				{ID: uuid.New(), Name: "Haircut & Styling", DurationMinutes: 45, PriceCents: 3500},
			},
		},
		{ID: uuid.New(), Name: "João Santos", Email: "joao@beauty.com"},
	}
	s.mockQueries.EXPECT().ListProfessionals(gomock.Any()).Return(views, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/professionals", nil)

	var resp []resdto.ProfessionalResponse
	httptest.AssertSuccessEnvelope(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 2)
	s.Equal("Maria Silva", resp[0].Name)
	s.Len(resp[0].Services, 1)
	s.NotNil(resp[1].Services, "services must marshal as an empty array, not null")
}
