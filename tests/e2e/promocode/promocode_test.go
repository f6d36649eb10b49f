//go:build e2e

package promocode_test

import (
	"net/http"
	"testing"
	"time"

	"periop-admin/internal/domain/user"
	"periop-admin/tests/common/authtest"
	"periop-admin/tests/common/builder"
	"periop-admin/tests/common/dbtest"
	"periop-admin/tests/common/httptest"
	"periop-admin/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const promoCodesURL = "/api/admin/promo-codes"

type promoCodeSuite struct {
	e2e.SharedSuite
}

func TestPromoCodeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(promoCodeSuite))
}

func (s *promoCodeSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

type promoCodeBody struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	InfluencerName    string  `json:"influencerName"`
	InfluencerContact *string `json:"influencerContact"`
	DiscountType      string  `json:"discountType"`
	DiscountValue     float64 `json:"discountValue"`
	Duration          string  `json:"duration"`
	Notes             *string `json:"notes"`
	TimesUsed         int32   `json:"timesUsed"`
	IsActive          bool    `json:"isActive"`
	CreatedAt         int64   `json:"createdAt"`
}

func (s *promoCodeSuite) TestCreate() {
	s.Run("percentage code with all fields", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewPromoCodeBuilder().
			WithCode("drj10").
			WithInfluencerName("Dr. Jones").
			WithInfluencerContact("drjones@example.com").
			WithNotes("Spring campaign").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "DRJ10", created.Code, "code is stored canonicalized")
		require.Equal(t, "Dr. Jones", created.InfluencerName)
		require.Equal(t, "percentage", created.DiscountType)
		require.Equal(t, float64(10), created.DiscountValue)
		require.Equal(t, "once", created.Duration)
		require.Equal(t, int32(0), created.TimesUsed)
		require.True(t, created.IsActive)
		require.NotZero(t, created.CreatedAt)
		require.Equal(t, promoCodesURL+"/"+created.ID, w.Header().Get("Location"))
	})

	s.Run("amount code without optional fields", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewPromoCodeBuilder().
			WithCode("FLAT25").
			AsAmountDiscount(25.00).
			WithInfluencerContact("").
			WithNotes("").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "amount", created.DiscountType)
		require.Equal(t, 25.00, created.DiscountValue)
		require.Nil(t, created.InfluencerContact)
		require.Nil(t, created.Notes)
	})

	s.Run("duplicate code differing only in case", func() {
		t := s.T()
		token := s.adminToken()

		first := builder.NewPromoCodeBuilder().WithCode("SAVE10").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := builder.NewPromoCodeBuilder().WithCode("save10").BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, second, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("duplicate of a deactivated code", func() {
		t := s.T()
		token := s.adminToken()

		dbtest.CreateTestPromoCode(t, s.DB, "RETIRED5", false)

		reqBody := builder.NewPromoCodeBuilder().WithCode("retired5").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, "deactivated codes keep their reservation")
	})

	s.Run("field validation failures", func() {
		t := s.T()
		token := s.adminToken()

		tests := []struct {
			name          string
			mutate        func(*builder.PromoCodeBuilder) *builder.PromoCodeBuilder
			expectedField string
		}{
			{
				name: "empty code",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithCode("   ")
				},
				expectedField: "code",
			},
			{
				name: "empty influencer name",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithInfluencerName("")
				},
				expectedField: "influencerName",
			},
			{
				name: "unknown discount type",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithDiscountType("fixed")
				},
				expectedField: "discountType",
			},
			{
				name: "percentage above 100",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithDiscountValue(150)
				},
				expectedField: "discountValue",
			},
			{
				name: "fractional percentage",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithDiscountValue(50.5)
				},
				expectedField: "discountValue",
			},
			{
				name: "amount above ceiling",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.AsAmountDiscount(10000.01)
				},
				expectedField: "discountValue",
			},
			{
				name: "unknown duration",
				mutate: func(b *builder.PromoCodeBuilder) *builder.PromoCodeBuilder {
					return b.WithDuration("three_months")
				},
				expectedField: "duration",
			},
		}

		for _, tt := range tests {
			reqBody := tt.mutate(builder.NewPromoCodeBuilder().WithCode("VALID" + uuid.NewString()[:8])).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL, reqBody, token)
			require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", tt.name, w.Body.String())

			var body struct {
				Detail struct {
					Field string `json:"field"`
				} `json:"detail"`
			}
			httptest.DecodeResponseBody(t, w.Body, &body)
			require.Equal(t, tt.expectedField, body.Detail.Field, tt.name)
		}
	})
}

func (s *promoCodeSuite) TestList() {
	s.Run("returns codes oldest first", func() {
		t := s.T()
		token := s.adminToken()

		// created_at is pinned so the ordering assertion is deterministic
		base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
		for i, code := range []string{"FIRST1", "SECOND2", "THIRD3"} {
			_, err := s.DB.Exec(t.Context(),
				`INSERT INTO promo_codes (id, code, influencer_name, discount_type, discount_value, duration, created_at)
				 VALUES ($1, $2, 'Dr. Jones', 'percentage', 10, 'once', $3)`,
				uuid.New(), code, base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list []promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &list)
		require.Len(t, list, 3)
		require.Equal(t, "FIRST1", list[0].Code)
		require.Equal(t, "SECOND2", list[1].Code)
		require.Equal(t, "THIRD3", list[2].Code)
	})

	s.Run("includes inactive codes", func() {
		t := s.T()
		token := s.adminToken()

		dbtest.CreateTestPromoCode(t, s.DB, "LIVE1", true)
		dbtest.CreateTestPromoCode(t, s.DB, "DEAD1", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var list []promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &list)
		require.Len(t, list, 2)
	})

	s.Run("empty table yields empty array", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

func (s *promoCodeSuite) TestGet() {
	s.Run("existing code", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestPromoCode(t, s.DB, "DRJ10", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL+"/"+id.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, id.String(), got.ID)
		require.Equal(t, "DRJ10", got.Code)
	})

	s.Run("unknown id", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL+"/"+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promoCodesURL+"/not-a-uuid", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *promoCodeSuite) TestDeactivate() {
	s.Run("active code", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestPromoCode(t, s.DB, "DRJ10", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL+"/"+id.String()+"/deactivate", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got promoCodeBody
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.False(t, got.IsActive)

		var isActive bool
		err := s.DB.QueryRow(t.Context(), "SELECT is_active FROM promo_codes WHERE id = $1", id).Scan(&isActive)
		require.NoError(t, err)
		require.False(t, isActive)
	})

	s.Run("already inactive code", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestPromoCode(t, s.DB, "DRJ10", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL+"/"+id.String()+"/deactivate", nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("unknown id", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoCodesURL+"/"+uuid.NewString()+"/deactivate", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *promoCodeSuite) TestAdminGate() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "viewer is refused",
			setupToken: func() string {
				return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "operator is refused",
			setupToken: func() string {
				return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", string(user.RoleOperator))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "anonymous is refused",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := tt.setupToken()

			id := dbtest.CreateTestPromoCode(t, s.DB, "DRJ10", true)

			requests := []struct {
				method string
				path   string
				body   any
			}{
				{http.MethodPost, promoCodesURL, builder.NewPromoCodeBuilder().WithCode("GATE1").BuildCreateRequestDTO()},
				{http.MethodGet, promoCodesURL, nil},
				{http.MethodGet, promoCodesURL + "/" + id.String(), nil},
				{http.MethodPost, promoCodesURL + "/" + id.String() + "/deactivate", nil},
			}

			for _, r := range requests {
				w := httptest.PerformRequest(t, s.Router, r.method, r.path, r.body, token)
				require.Equal(t, tt.expectedStatus, w.Code, "%s %s: %s", r.method, r.path, w.Body.String())
			}

			// the gate must refuse before any handler runs
			var count int
			err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM promo_codes WHERE code = 'GATE1'").Scan(&count)
			require.NoError(t, err)
			require.Zero(t, count)
		})
	}
}
