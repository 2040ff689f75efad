//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"travel-booking/internal/handler/api"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	usecasemock "travel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *usecasemock.MockReservationManager
	handler          *api.HoldHandler
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = usecasemock.NewMockReservationManager(s.mockCtrl)
	s.handler = api.NewHoldHandler(s.mockReservations)

	s.router.POST("/holds", s.handler.CreateHold)
	s.router.GET("/holds/:id", s.handler.GetHold)
	s.router.PATCH("/holds/:id", s.handler.UpdateHold)
	s.router.DELETE("/holds/:id", s.handler.ReleaseHold)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

func (s *HoldHandlerTestSuite) createBody(muts ...func(map[string]any)) map[string]any {
	return testutil.DtoMap(s.T(), reqdto.CreateHoldRequest{
		ProductType: "tour",
		ProductID:   uuid.New(),
		ScopeID:     "2026-07-01/standard",
		Quantity:    2,
		OwnerRef:    "cart-1234",
	}, muts...)
}

func (s *HoldHandlerTestSuite) TestCreateHold() {
	url := "/holds"

	s.Run("success: returns 201 with the created hold", func() {
		entity, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockReservations.EXPECT().
			CreateHold(gomock.Any(), gomock.Any()).
			Return(entity, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "cart-1234")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(entity.ID(), body.ID)
		s.Equal("tour", body.ProductType)
		s.Equal(2, body.Quantity)
		s.Equal("active", body.Status)
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing product_type", mutate: testutil.Field("product_type", nil)},
			{name: "unknown product_type", mutate: testutil.Field("product_type", "cruise")},
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing scope_id", mutate: testutil.Field("scope_id", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "missing owner_ref", mutate: testutil.Field("owner_ref", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when capacity is insufficient", func() {
		s.mockReservations.EXPECT().
			CreateHold(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrCapacityUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient capacity")
	})

	s.Run("error: 404 when the capacity pool does not exist", func() {
		s.mockReservations.EXPECT().
			CreateHold(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrPoolNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Capacity pool not found")
	})

	s.Run("error: 503 on lock timeout", func() {
		s.mockReservations.EXPECT().
			CreateHold(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrLockTimeout)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "retry later")
	})
}

func (s *HoldHandlerTestSuite) TestGetHold() {
	s.Run("success: returns the hold", func() {
		entity, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockReservations.EXPECT().
			GetHold(gomock.Any(), entity.ID()).
			Return(entity, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+entity.ID().String(), nil, "")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(entity.ID(), body.ID)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hold id")
	})

	s.Run("error: 404 when unknown", func() {
		id := uuid.New()
		s.mockReservations.EXPECT().
			GetHold(gomock.Any(), id).
			Return(nil, usecase.ErrHoldNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hold not found")
	})
}

func (s *HoldHandlerTestSuite) TestUpdateHold() {
	s.Run("success: body without quantity renews", func() {
		entity, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockReservations.EXPECT().
			RenewHold(gomock.Any(), entity.ID(), gomock.Any()).
			Return(entity, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/holds/"+entity.ID().String(), map[string]any{}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: body with quantity resizes", func() {
		entity, err := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
			b.Quantity = 5
		}).BuildDomain()
		s.Require().NoError(err)
		s.mockReservations.EXPECT().
			ResizeHold(gomock.Any(), entity.ID(), 5, gomock.Any()).
			Return(entity, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/holds/"+entity.ID().String(),
			map[string]any{"quantity": 5}, "")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.Quantity)
	})

	s.Run("error: 410 when the hold expired", func() {
		id := uuid.New()
		s.mockReservations.EXPECT().
			RenewHold(gomock.Any(), id, gomock.Any()).
			Return(nil, usecase.ErrHoldExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/holds/"+id.String(), map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "expired")
	})

	s.Run("error: 422 when quantity is fixed", func() {
		id := uuid.New()
		s.mockReservations.EXPECT().
			ResizeHold(gomock.Any(), id, 2, gomock.Any()).
			Return(nil, usecase.ErrHoldNotResizable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/holds/"+id.String(),
			map[string]any{"quantity": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "fixed")
	})

	s.Run("error: 400 on zero quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/holds/"+uuid.NewString(),
			map[string]any{"quantity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *HoldHandlerTestSuite) TestReleaseHold() {
	s.Run("success: 204 and no body", func() {
		id := uuid.New()
		s.mockReservations.EXPECT().
			ReleaseHold(gomock.Any(), id).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when unknown", func() {
		id := uuid.New()
		s.mockReservations.EXPECT().
			ReleaseHold(gomock.Any(), id).
			Return(usecase.ErrHoldNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hold not found")
	})
}
