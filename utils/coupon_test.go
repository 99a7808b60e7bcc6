package utils

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/arundas-dev/CycleKart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateCouponTermsNotFound(t *testing.T) {
	terms, err := ValidateCouponTerms(nil, time.Now())
	assert.Nil(t, terms)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateCouponTermsInactive(t *testing.T) {
	coupon := &models.Coupon{Code: "SLEEPY", Type: models.CouponTypePerCycle, Discount: 10, Active: false}

	terms, err := ValidateCouponTerms(coupon, time.Now())
	assert.Nil(t, terms)
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestValidateCouponTermsInactiveBeatsExpired(t *testing.T) {
	// Checks run in order: an inactive coupon reports Inactive even when it
	// has also expired
	past := time.Now().Add(-time.Hour)
	coupon := &models.Coupon{Code: "GONE", Type: models.CouponTypePerCycle, Discount: 10, Active: false, ExpiresAt: &past}

	_, err := ValidateCouponTerms(coupon, time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestValidateCouponTermsExpired(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	coupon := &models.Coupon{Code: "LATE", Type: models.CouponTypeTotalAmount, Discount: 500, Active: true, ExpiresAt: &past}

	terms, err := ValidateCouponTerms(coupon, time.Now())
	assert.Nil(t, terms)
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestValidateCouponTermsNoExpiryNeverExpires(t *testing.T) {
	coupon := &models.Coupon{Code: "FOREVER", Type: models.CouponTypePerCycle, Discount: 5, Active: true}

	terms, err := ValidateCouponTerms(coupon, time.Now().AddDate(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "FOREVER", terms.Code)
}

func TestValidateCouponTermsSuccess(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	coupon := &models.Coupon{Code: "CYCLE10", Type: models.CouponTypePerCycle, Discount: 10, Active: true, ExpiresAt: &future}

	terms, err := ValidateCouponTerms(coupon, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "CYCLE10", terms.Code)
	assert.Equal(t, models.CouponTypePerCycle, terms.Type)
	assert.Equal(t, 10.0, terms.Discount)
}

func TestValidateCouponTermsIdempotent(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	coupon := &models.Coupon{Code: "AGAIN", Type: models.CouponTypeTotalAmount, Discount: 250, Active: true, ExpiresAt: &future}
	now := time.Now()

	first, err1 := ValidateCouponTerms(coupon, now)
	second, err2 := ValidateCouponTerms(coupon, now)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	// Validation must not mutate the coupon
	assert.True(t, coupon.Active)
	assert.Equal(t, 250.0, coupon.Discount)
}

func TestTermsFromLookupMissingRow(t *testing.T) {
	terms, err := TermsFromLookup(nil, gorm.ErrRecordNotFound, time.Now())
	assert.Nil(t, terms)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestTermsFromLookupStorageFailure(t *testing.T) {
	// A store that cannot be reached is a server failure, not an unknown code
	cause := errors.New("connection refused")

	terms, err := TermsFromLookup(nil, cause, time.Now())
	assert.Nil(t, terms)
	require.NotErrorIs(t, err, ErrCouponNotFound)

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestTermsFromLookupValidRow(t *testing.T) {
	future := time.Now().Add(time.Hour)
	coupon := &models.Coupon{Code: "RIDE5", Type: models.CouponTypePerCycle, Discount: 5, Active: true, ExpiresAt: &future}

	terms, err := TermsFromLookup(coupon, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "RIDE5", terms.Code)
}

func TestValidateCouponTermsExpiryBoundary(t *testing.T) {
	expiry := time.Now()
	coupon := &models.Coupon{Code: "EDGE", Type: models.CouponTypePerCycle, Discount: 10, Active: true, ExpiresAt: &expiry}

	// Exactly at the expiry instant the coupon is still valid; one tick later
	// it is rejected
	_, err := ValidateCouponTerms(coupon, expiry)
	assert.NoError(t, err)

	_, err = ValidateCouponTerms(coupon, expiry.Add(time.Nanosecond))
	assert.ErrorIs(t, err, ErrCouponExpired)
}
