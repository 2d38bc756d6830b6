package errs

import "errors"

// Error kinds shared by the usecase layers. Usecases mark concrete errors
// with one of these and handlers map them to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotOccupied    = errors.New("slot occupied, choose another time")
	ErrServiceNotFound = errors.New("service not found")
	ErrMasterNotFound  = errors.New("master not found")

	// Catalog and content errors
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrCertificateNotFound   = errors.New("certificate not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
