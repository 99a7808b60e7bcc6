package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/arundas-dev/CycleKart/models"
	"gorm.io/gorm"
)

// Coupon validation failures, distinguished so callers can show an accurate
// message ("expired" is not "invalid code")
var (
	ErrCouponNotFound = NewAppError(http.StatusNotFound, "Coupon not found", nil)
	ErrCouponInactive = NewAppError(http.StatusUnprocessableEntity, "Coupon is not active", nil)
	ErrCouponExpired  = NewAppError(http.StatusUnprocessableEntity, "Coupon has expired", nil)
)

// ValidateCouponTerms resolves a looked-up coupon into discount terms. Checks
// run in order: missing, inactive, expired. Validation has no side effects and
// does not consume the coupon; repeated calls with the same inputs return the
// same result.
func ValidateCouponTerms(coupon *models.Coupon, now time.Time) (*CouponTerms, error) {
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.Active {
		return nil, ErrCouponInactive
	}
	if coupon.Expired(now) {
		return nil, ErrCouponExpired
	}
	return &CouponTerms{
		Code:     coupon.Code,
		Type:     coupon.Type,
		Discount: coupon.Discount,
	}, nil
}

// TermsFromLookup translates the outcome of a coupon row lookup into
// validated terms. A missing row takes the not-found path; any other storage
// error surfaces as a server failure so an outage is never mistaken for a
// bad code.
func TermsFromLookup(coupon *models.Coupon, lookupErr error, now time.Time) (*CouponTerms, error) {
	switch {
	case lookupErr == nil:
		return ValidateCouponTerms(coupon, now)
	case errors.Is(lookupErr, gorm.ErrRecordNotFound):
		return ValidateCouponTerms(nil, now)
	default:
		return nil, NewAppError(http.StatusInternalServerError, "Failed to look up coupon", WrapError(lookupErr, "coupon lookup"))
	}
}
