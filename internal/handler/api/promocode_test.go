//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"periop-admin/internal/domain/promocode"
	"periop-admin/internal/domain/user"
	"periop-admin/internal/handler/api"
	resdto "periop-admin/internal/handler/dto/response"
	"periop-admin/internal/pkg/errs"
	"periop-admin/internal/usecase/commands"
	"periop-admin/internal/usecase/queries"
	"periop-admin/tests/common/builder"
	"periop-admin/tests/common/httptest"
	"periop-admin/tests/common/testutil"
	commandsmock "periop-admin/tests/mock/commands"
	queriesmock "periop-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromoCodeCommands
	mockQueries  *queriesmock.MockPromoCodeQueries
	handler      *api.PromoCodeHandler
}

func (s *PromoCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromoCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromoCodeQueries(s.mockCtrl)
	s.handler = api.NewPromoCodeHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the admin gate so handler behavior is tested in isolation
	adminGate := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	admin := s.router.Group("/api/admin")
	admin.Use(adminGate)
	admin.POST("/promo-codes", s.handler.Create)
	admin.GET("/promo-codes", s.handler.List)
	admin.GET("/promo-codes/:id", s.handler.Get)
	admin.POST("/promo-codes/:id/deactivate", s.handler.Deactivate)
}

func (s *PromoCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoCodeHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestCreate() {
	url := "/api/admin/promo-codes"

	reqBody := builder.NewPromoCodeBuilder().BuildCreateRequestDTO()
	returnView := builder.NewPromoCodeBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored record", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreatePromoCodeResult{PromoCodeID: returnView.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal("DRJ10", response.Code)
		s.True(response.IsActive)
		s.Equal(int32(0), response.TimesUsed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/admin/promo-codes/" + returnView.ID.String(),
		})
	})

	s.Run("error: 400 with field detail on validation failure", func() {
		validationCases := []struct {
			name  string
			err   error
			field string
		}{
			{"empty code", promocode.ErrEmptyCode, "code"},
			{"empty influencer name", promocode.ErrEmptyInfluencerName, "influencerName"},
			{"bad discount type", promocode.ErrInvalidDiscountType, "discountType"},
			{"percentage out of range", promocode.ErrPercentageOutOfRange, "discountValue"},
			{"amount out of range", promocode.ErrAmountOutOfRange, "discountValue"},
			{"bad duration", promocode.ErrInvalidDuration, "duration"},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errs.Mark(tc.err, errs.ErrDomainValidation)).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid promo code data")

				var body struct {
					Detail struct {
						Field string `json:"field"`
					} `json:"detail"`
				}
				httptest.DecodeResponseBody(s.T(), rec.Body, &body)
				s.Equal(tc.field, body.Detail.Field)
			})
		}
	})

	s.Run("error: 409 Conflict for duplicate code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPromoCodeConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 Bad Request for malformed JSON body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("discountValue", "ten"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestList() {
	url := "/api/admin/promo-codes"

	s.Run("success: returns 200 OK with every code", func() {
		active := builder.NewPromoCodeBuilder().BuildView()
		inactive := builder.NewPromoCodeBuilder().WithCode("OLD20").AsInactive().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.PromoCodeView{active, inactive}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("DRJ10", response[0].Code)
		s.Equal("OLD20", response[1].Code)
		s.False(response[1].IsActive)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.PromoCodeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/api/admin/promo-codes/" + id.String()

	s.Run("success: returns 200 OK with PromoCodeResponse", func() {
		returnView := builder.NewPromoCodeBuilder().BuildView()
		returnView.ID = id
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id.String(), response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/promo-codes/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing code", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrPromoCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestDeactivate() {
	id := uuid.New()
	url := "/api/admin/promo-codes/" + id.String() + "/deactivate"

	s.Run("success: returns 200 OK with the updated record", func() {
		returnView := builder.NewPromoCodeBuilder().AsInactive().BuildView()
		returnView.ID = id
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id.String(), response.ID)
		s.False(response.IsActive)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id).
			Return(errs.ErrPromoCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 409 Conflict when already inactive", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id).
			Return(errs.ErrPromoCodeAlreadyInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already inactive")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/promo-codes/not-a-uuid/deactivate", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
