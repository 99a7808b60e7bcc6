package utils

import (
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the client-scoped cart state
const (
	SessionKeyCart   = "cart"
	SessionKeyCoupon = "coupon"
)

// CheckSessionStore writes and removes a throwaway value to confirm the
// cookie store can actually persist before any cart state is trusted to it.
func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("ping", time.Now().Unix())
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store unavailable: %v", err)
	}
	session.Delete("ping")
	return session.Save()
}

// GetCartSession returns the cart lines held in the caller's session
func GetCartSession(c *gin.Context) []CartItem {
	session := sessions.Default(c)
	if items, ok := session.Get(SessionKeyCart).([]CartItem); ok {
		return items
	}
	return nil
}

// SaveCartSession persists cart lines into the caller's session
func SaveCartSession(c *gin.Context, items []CartItem) error {
	session := sessions.Default(c)
	session.Set(SessionKeyCart, items)
	return session.Save()
}

// GetCouponSession returns the coupon terms applied to the session cart, if any
func GetCouponSession(c *gin.Context) *CouponTerms {
	session := sessions.Default(c)
	if terms, ok := session.Get(SessionKeyCoupon).(CouponTerms); ok {
		return &terms
	}
	return nil
}

// SaveCouponSession stores validated coupon terms against the session cart
func SaveCouponSession(c *gin.Context, terms CouponTerms) error {
	session := sessions.Default(c)
	session.Set(SessionKeyCoupon, terms)
	return session.Save()
}

// ClearCouponSession removes any applied coupon from the session
func ClearCouponSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionKeyCoupon)
	return session.Save()
}

// ClearCartSession drops the cart and any applied coupon from the session
func ClearCartSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionKeyCart)
	session.Delete(SessionKeyCoupon)
	return session.Save()
}
