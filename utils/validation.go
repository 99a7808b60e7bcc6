package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/arundas-dev/CycleKart/models"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	slugRegex    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nameRegex    = regexp.MustCompile(`^[\p{L}0-9 .,'&()-]{2,100}$`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString escapes HTML special characters and strips any tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(strings.TrimSpace(input))
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateSlug checks that a category slug is lowercase alphanumeric with
// single hyphen separators
func ValidateSlug(slug string) (bool, string) {
	if slug == "" {
		return false, "Slug is required"
	}
	if len(slug) > 100 {
		return false, "Slug must not exceed 100 characters"
	}
	if !slugRegex.MatchString(slug) {
		return false, "Slug may only contain lowercase letters, numbers and hyphens"
	}
	return true, ""
}

// ValidateName checks a display name (category, brand, customer)
func ValidateName(name string) (bool, string) {
	if strings.TrimSpace(name) == "" {
		return false, "Name is required"
	}
	if !nameRegex.MatchString(strings.TrimSpace(name)) {
		return false, "Name must be 2-100 characters and contain only letters, numbers and basic punctuation"
	}
	return true, ""
}

// ValidateCouponValue enforces the per-type units of the coupon discount
// field: perCycle coupons carry a percentage in (0,100], totalAmount coupons
// carry an absolute currency amount greater than zero.
func ValidateCouponValue(couponType string, value float64) error {
	switch couponType {
	case models.CouponTypePerCycle:
		if value <= 0 || value > 100 {
			return fmt.Errorf("perCycle coupon discount must be a percentage between 0 and 100")
		}
	case models.CouponTypeTotalAmount:
		if value <= 0 {
			return fmt.Errorf("totalAmount coupon discount must be greater than 0")
		}
	default:
		return fmt.Errorf("coupon type must be %s or %s", models.CouponTypePerCycle, models.CouponTypeTotalAmount)
	}
	return nil
}

// ValidateTyreSelection checks a cart line's tyre/brand combination. The brand
// selection is only meaningful for tube-tyres; for tubeless it may be empty.
func ValidateTyreSelection(tyreType, brandType string) (bool, string) {
	if !ValidTyreType(tyreType) {
		return false, fmt.Sprintf("Tyre type must be %s or %s", TyreTypeTube, TyreTypeTubeless)
	}
	if tyreType == TyreTypeTube && !ValidBrandType(brandType) {
		return false, fmt.Sprintf("Brand type must be %s or %s for tube-tyres", BrandTypeBranded, BrandTypeNonBranded)
	}
	if tyreType == TyreTypeTubeless && brandType != "" && !ValidBrandType(brandType) {
		return false, "Unknown brand type"
	}
	return true, ""
}
