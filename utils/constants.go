package utils

// Application constants
const (
	// Application name
	AppName = "CycleKart"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "cyclekart"

	// Default database user
	DefaultDBUser = "postgres"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum name length
	MinNameLength = 2

	// Maximum name length
	MaxNameLength = 100

	// Maximum description length
	MaxDescriptionLength = 500
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"

	// Validation errors
	ErrInvalidSlug       = "Slug may only contain lowercase letters, numbers and hyphens"
	ErrInvalidCost       = "Cost cannot be negative"
	ErrInvalidBundleSize = "Bundle size must be a positive number"
	ErrInvalidWheelSize  = "Unknown wheel size"
	ErrInvalidFileType   = "Invalid file type. Allowed types: jpg, jpeg, png, webp"
	ErrFileTooLarge      = "File size exceeds 5MB limit"
	ErrInvalidPagination = "Invalid pagination parameters"

	// Database errors
	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
	ErrDBConnection   = "Database connection error"

	// Server errors
	ErrInternalServer     = "Internal server error"
	ErrServiceUnavailable = "Service unavailable"
)

// Success messages
const (
	// Authentication messages
	MsgLoginSuccess  = "Login successful"
	MsgLogoutSuccess = "Logout successful"

	// CRUD operation messages
	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgDeleteSuccess = "Deleted successfully"
	MsgUploadSuccess = "File uploaded successfully"
)
