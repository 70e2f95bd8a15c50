package docforge

import "time"

// DefaultInstructor is used when CertificateInput.InstructorName is empty.
const DefaultInstructor = "IntelliForge AI Team"

// ConversionInput contains parameters for a markdown conversion.
type ConversionInput struct {
	Markdown string // Markdown content (required)
}

// CertificateInput contains parameters for a participation certificate.
// CompletionDate is an opaque display string and is not parsed as a
// calendar date.
type CertificateInput struct {
	ParticipantName string
	CourseName      string
	CompletionDate  string
	InstructorName  string // empty = DefaultInstructor
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	theme   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docforge: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithCertificateTheme selects the embedded certificate skeleton by name.
// Unknown themes surface as an error from New.
func WithCertificateTheme(name string) Option {
	return func(s *Service) {
		s.cfg.theme = name
	}
}
