package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, Coupon{}.Expired(now), "no expiry never expires")
	assert.False(t, Coupon{ExpiresAt: &future}.Expired(now))
	assert.True(t, Coupon{ExpiresAt: &past}.Expired(now))
}

func TestValidCouponType(t *testing.T) {
	assert.True(t, ValidCouponType(CouponTypePerCycle))
	assert.True(t, ValidCouponType(CouponTypeTotalAmount))
	assert.False(t, ValidCouponType("percent"))
	assert.False(t, ValidCouponType(""))
}
