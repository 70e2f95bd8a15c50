package docforge

import (
	"context"
	"fmt"
	"strings"

	"github.com/intelliforge/docforge/internal/assets"
)

// Service orchestrates the markdown-to-PDF and certificate pipelines.
// A Service owns one headless browser instance; use ServicePool for
// concurrent request handling.
type Service struct {
	cfg           serviceConfig
	normalizer    markdownNormalizer
	htmlConverter htmlConverter
	skeletons     *skeletonRenderer
	pdfConverter  pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout,
// WithCertificateTheme).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout, theme: assets.DefaultTheme},
		normalizer:    &listAwareNormalizer{},
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	skeletons, err := newSkeletonRenderer(s.cfg.theme)
	if err != nil {
		return nil, err
	}
	s.skeletons = skeletons

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// Convert runs the markdown pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout. Empty markdown is not
// an error; it renders as a blank page.
func (s *Service) Convert(ctx context.Context, input ConversionInput) ([]byte, error) {
	mdContent := s.normalizer.Normalize(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, err := s.skeletons.RenderDocument(fragment)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, documentLayout)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// IssueCertificate validates the request, renders the certificate skeleton,
// and returns the PDF bytes plus a suggested download filename.
//
// Validation order (first failure wins): course membership, then
// participant name. Both checks run before any rendering work.
func (s *Service) IssueCertificate(ctx context.Context, input CertificateInput) ([]byte, string, error) {
	if !KnownCourse(input.CourseName) {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownCourse, input.CourseName)
	}

	name := strings.TrimSpace(input.ParticipantName)
	if name == "" {
		return nil, "", ErrMissingParticipant
	}

	instructor := input.InstructorName
	if instructor == "" {
		instructor = DefaultInstructor
	}

	htmlContent, err := s.skeletons.RenderCertificate(certificateData{
		ParticipantName: name,
		CourseName:      input.CourseName,
		CompletionDate:  input.CompletionDate,
		InstructorName:  instructor,
		CertificateID:   CertificateID(name, input.CourseName, input.CompletionDate),
	})
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, certificateLayout)
	if err != nil {
		return nil, "", fmt.Errorf("converting to PDF: %w", err)
	}

	filename := "Certificate_" + strings.ReplaceAll(name, " ", "_") + ".pdf"
	return pdfBytes, filename, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
