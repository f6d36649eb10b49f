//go:build unit

package promocode_test

import (
	"testing"
	"time"

	"periop-admin/internal/domain/promocode"
	"periop-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromoCodeBuilder)
	errIs  error
}

func TestPromoCode(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPromoCodeBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "DRJ10", actual.Code().String())
		assert.Equal(t, "Dr. Jones", actual.InfluencerName())
		assert.Equal(t, promocode.DiscountPercentage, actual.Discount().Type())
		assert.Equal(t, float64(10), actual.Discount().Value())
		assert.Equal(t, promocode.DurationOnce, actual.Duration())
		assert.Equal(t, int32(0), actual.TimesUsed())
		assert.True(t, actual.IsActive())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty code",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithCode("") },
				errIs:  promocode.ErrEmptyCode,
			},
			{
				name:   "whitespace only code",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithCode("   ") },
				errIs:  promocode.ErrEmptyCode,
			},
			{
				name:   "mixed case code is accepted",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithCode("save10") },
			},
		})
	})

	t.Run("code canonicalization", func(t *testing.T) {
		pc, err := builder.NewPromoCodeBuilder().WithCode("  drJ10  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "DRJ10", pc.Code().String())
	})

	t.Run("influencer name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithInfluencerName("") },
				errIs:  promocode.ErrEmptyInfluencerName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithInfluencerName("  ") },
				errIs:  promocode.ErrEmptyInfluencerName,
			},
		})
	})

	t.Run("discount type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown type",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountType("fixed") },
				errIs:  promocode.ErrInvalidDiscountType,
			},
			{
				name:   "empty type",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountType("") },
				errIs:  promocode.ErrInvalidDiscountType,
			},
		})
	})

	t.Run("percentage validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(0) },
				errIs:  promocode.ErrDiscountValueNotPositive,
			},
			{
				name:   "negative percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(-10) },
				errIs:  promocode.ErrDiscountValueNotPositive,
			},
			{
				name:   "minimum valid percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(1) },
			},
			{
				name:   "maximum valid percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(100) },
			},
			{
				name:   "above maximum percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(101) },
				errIs:  promocode.ErrPercentageOutOfRange,
			},
			{
				name:   "fractional percentage",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDiscountValue(50.5) },
				errIs:  promocode.ErrPercentageNotInteger,
			},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid amount",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(0.01) },
			},
			{
				name:   "maximum valid amount",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(10000.00) },
			},
			{
				name:   "rounds up into range",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(0.009) },
			},
			{
				name:   "rounds down below minimum",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(0.001) },
				errIs:  promocode.ErrAmountOutOfRange,
			},
			{
				name:   "rounds down into range at the top",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(10000.004) },
			},
			{
				name:   "above maximum amount",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(10000.01) },
				errIs:  promocode.ErrAmountOutOfRange,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.PromoCodeBuilder) { b.AsAmountDiscount(-5) },
				errIs:  promocode.ErrDiscountValueNotPositive,
			},
		})
	})

	t.Run("amount rounding to cents", func(t *testing.T) {
		pc, err := builder.NewPromoCodeBuilder().AsAmountDiscount(0.009).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 0.01, pc.Discount().Value())

		// The literal 5000.005 sits just below the true half in binary
		// floating point, so the stored value is 5000.00.
		pc, err = builder.NewPromoCodeBuilder().AsAmountDiscount(5000.005).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 5000.0, pc.Discount().Value())
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "once",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDuration("once") },
			},
			{
				name:   "forever",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDuration("forever") },
			},
			{
				name:   "repeating",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDuration("repeating") },
			},
			{
				name:   "unknown duration",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDuration("monthly") },
				errIs:  promocode.ErrInvalidDuration,
			},
			{
				name:   "empty duration",
				mutate: func(b *builder.PromoCodeBuilder) { b.WithDuration("") },
				errIs:  promocode.ErrInvalidDuration,
			},
		})
	})

	t.Run("optional fields normalize to nil", func(t *testing.T) {
		pc, err := builder.NewPromoCodeBuilder().
			WithInfluencerContact("   ").
			WithNotes("").
			BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, pc.InfluencerContact())
		assert.Nil(t, pc.Notes())
	})

	t.Run("deactivate", func(t *testing.T) {
		pc, err := builder.NewPromoCodeBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, pc.Deactivate())
		assert.False(t, pc.IsActive())

		err = pc.Deactivate()
		assert.ErrorIs(t, err, promocode.ErrCodeAlreadyInactive)
		assert.False(t, pc.IsActive())
	})
}

func TestFieldOf(t *testing.T) {
	cases := map[error]string{
		promocode.ErrEmptyCode:                "code",
		promocode.ErrEmptyInfluencerName:      "influencerName",
		promocode.ErrInvalidDiscountType:      "discountType",
		promocode.ErrDiscountValueNotPositive: "discountValue",
		promocode.ErrPercentageNotInteger:     "discountValue",
		promocode.ErrPercentageOutOfRange:     "discountValue",
		promocode.ErrAmountOutOfRange:         "discountValue",
		promocode.ErrInvalidDuration:          "duration",
	}
	for err, field := range cases {
		assert.Equal(t, field, promocode.FieldOf(err), err.Error())
	}
	assert.Equal(t, "", promocode.FieldOf(assert.AnError))
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	created := time.Now().Add(-time.Hour)
	contact := "drjones@example.com"

	pc := promocode.Reconstruct(
		id,
		promocode.Code("DRJ10"),
		"Dr. Jones",
		&contact,
		promocode.ReconstructDiscount(promocode.DiscountAmount, 25.00),
		promocode.DurationForever,
		nil,
		int32(7),
		false,
		created,
	)

	assert.Equal(t, id, pc.ID())
	assert.Equal(t, "DRJ10", pc.Code().String())
	assert.Equal(t, int32(7), pc.TimesUsed())
	assert.False(t, pc.IsActive())
	assert.Equal(t, created, pc.CreatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPromoCodeBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
			} else {
				require.NoError(t, err)
				require.NotNil(t, actual)
			}
		})
	}
}
