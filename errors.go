package docforge

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrSkeletonRender = errors.New("skeleton rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPoolClosed     = errors.New("service pool is closed")

	// Certificate validation errors.
	ErrUnknownCourse      = errors.New("unknown course")
	ErrMissingParticipant = errors.New("participant name is required")
)
