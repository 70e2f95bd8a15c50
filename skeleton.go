package docforge

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/intelliforge/docforge/internal/assets"
)

// documentData fills the generic document skeleton. Content is the
// goldmark-produced fragment and is inserted without escaping: goldmark
// never emits raw user HTML (WithUnsafe is off), so the fragment is trusted.
type documentData struct {
	Content template.HTML
}

// certificateData fills a certificate skeleton. All fields are plain
// strings and are HTML-escaped by html/template on execution.
type certificateData struct {
	ParticipantName string
	CourseName      string
	CompletionDate  string
	InstructorName  string
	CertificateID   string
}

// skeletonRenderer executes the embedded skeletons. Templates are parsed
// once at construction; a parse failure is surfaced as an error from New
// rather than deferred to request time.
type skeletonRenderer struct {
	document    *template.Template
	certificate *template.Template
}

// newSkeletonRenderer parses the document skeleton and the certificate
// skeleton for the given theme.
func newSkeletonRenderer(theme string) (*skeletonRenderer, error) {
	docSrc, err := assets.LoadDocumentSkeleton()
	if err != nil {
		return nil, err
	}
	doc, err := template.New("document").Parse(docSrc)
	if err != nil {
		return nil, fmt.Errorf("parsing document skeleton: %w", err)
	}

	certSrc, err := assets.LoadCertificateTheme(theme)
	if err != nil {
		return nil, err
	}
	cert, err := template.New("certificate").Parse(certSrc)
	if err != nil {
		return nil, fmt.Errorf("parsing certificate theme %q: %w", theme, err)
	}

	return &skeletonRenderer{document: doc, certificate: cert}, nil
}

// RenderDocument wraps an HTML fragment in the styled document skeleton.
func (r *skeletonRenderer) RenderDocument(fragment string) (string, error) {
	var buf strings.Builder
	if err := r.document.Execute(&buf, documentData{Content: template.HTML(fragment)}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSkeletonRender, err)
	}
	return buf.String(), nil
}

// RenderCertificate fills the certificate skeleton. Field values are
// escaped on insertion, so markup in a participant name renders as text.
func (r *skeletonRenderer) RenderCertificate(data certificateData) (string, error) {
	var buf strings.Builder
	if err := r.certificate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSkeletonRender, err)
	}
	return buf.String(), nil
}
