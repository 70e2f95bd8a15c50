// Package docforge renders Markdown documents and course-participation
// certificates to PDF using headless Chrome.
//
// # Quick Start
//
// Create a service, convert markdown, and close when done:
//
//	svc, err := docforge.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	pdf, err := svc.Convert(ctx, docforge.ConversionInput{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown normalization (line endings, blank lines before lists/headers)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Skeleton rendering (embedded HTML/CSS document or certificate layout)
//  4. PDF rendering via headless Chrome (go-rod)
//
// # Certificates
//
// IssueCertificate validates the course against the fixed catalog, derives a
// deterministic certificate ID, and renders the configured certificate theme:
//
//	pdf, filename, err := svc.IssueCertificate(ctx, docforge.CertificateInput{
//	    ParticipantName: "Ada Lovelace",
//	    CourseName:      "Full-Stack AI Development",
//	    CompletionDate:  "2026-01-15",
//	})
//
// # Parallel Processing
//
// Each Service owns one browser instance. For concurrent request handling,
// use ServicePool to manage multiple instances:
//
//	pool := docforge.NewServicePool(docforge.ResolvePoolSize(0))
//	defer pool.Close()
package docforge
