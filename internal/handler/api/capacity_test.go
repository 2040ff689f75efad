//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"travel-booking/internal/handler/api"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	usecasemock "travel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *usecasemock.MockCapacityLedger
	handler    *api.CapacityHandler
}

func (s *CapacityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = usecasemock.NewMockCapacityLedger(s.mockCtrl)
	s.handler = api.NewCapacityHandler(s.mockLedger)

	s.router.GET("/availability", s.handler.GetAvailability)
	s.router.POST("/admin/capacity", s.handler.CreatePool)
	s.router.PATCH("/admin/capacity", s.handler.AdjustTotal)
}

func (s *CapacityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapacityHandlerTestSuite))
}

func availabilityURL(productType string, productID uuid.UUID, scopeID string) string {
	return fmt.Sprintf("/availability?product_type=%s&product_id=%s&scope_id=%s",
		productType, productID, url.QueryEscape(scopeID))
}

func (s *CapacityHandlerTestSuite) poolBody(muts ...func(map[string]any)) map[string]any {
	return testutil.DtoMap(s.T(), reqdto.CreatePoolRequest{
		ProductType: "event",
		ProductID:   uuid.New(),
		ScopeID:     "2026-08-15T19:00/balcony/standard",
		Total:       50,
	}, muts...)
}

func (s *CapacityHandlerTestSuite) TestGetAvailability() {
	s.Run("success: returns the available count", func() {
		productID := uuid.New()
		s.mockLedger.EXPECT().
			GetAvailable(gomock.Any(), gomock.Any()).
			Return(12, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL("event", productID, "2026-08-15T19:00/balcony/standard"), nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(12, body.Available)
		s.Equal(productID, body.ProductID)
	})

	s.Run("error: 400 on an unknown product type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL("cruise", uuid.New(), "2026-08-15T19:00"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on a malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?product_type=event&product_id=nope&scope_id=x", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid availability query")
	})

	s.Run("error: 404 when the pool does not exist", func() {
		s.mockLedger.EXPECT().
			GetAvailable(gomock.Any(), gomock.Any()).
			Return(0, usecase.ErrPoolNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL("event", uuid.New(), "2026-08-15T19:00/balcony/standard"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Capacity pool not found")
	})
}

func (s *CapacityHandlerTestSuite) TestCreatePool() {
	url := "/admin/capacity"

	s.Run("success: 201 Created", func() {
		s.mockLedger.EXPECT().
			CreatePool(gomock.Any(), gomock.Any(), 50).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.poolBody(), "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: zero total is a valid sold-out pool", func() {
		s.mockLedger.EXPECT().
			CreatePool(gomock.Any(), gomock.Any(), 0).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			s.poolBody(testutil.Field("total", 0)), "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 409 when the pool already exists", func() {
		s.mockLedger.EXPECT().
			CreatePool(gomock.Any(), gomock.Any(), 50).
			Return(usecase.ErrPoolAlreadyExists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.poolBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 on negative total", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			s.poolBody(testutil.Field("total", -1)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CapacityHandlerTestSuite) TestAdjustTotal() {
	url := "/admin/capacity"

	s.Run("success: 204 No Content", func() {
		s.mockLedger.EXPECT().
			AdjustTotal(gomock.Any(), gomock.Any(), 50).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, s.poolBody(), "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when total would undercut committed units", func() {
		s.mockLedger.EXPECT().
			AdjustTotal(gomock.Any(), gomock.Any(), 50).
			Return(usecase.ErrCapacityBelowCommitted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, s.poolBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "committed")
	})

	s.Run("error: 503 on lock timeout", func() {
		s.mockLedger.EXPECT().
			AdjustTotal(gomock.Any(), gomock.Any(), 50).
			Return(usecase.ErrLockTimeout)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, s.poolBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "retry later")
	})
}
