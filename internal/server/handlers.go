package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/intelliforge/docforge"
)

const defaultFilename = "document.pdf"

// convertRequest is the POST /api/convert payload.
type convertRequest struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
}

// certificateRequest is the POST /api/certificate payload.
type certificateRequest struct {
	ParticipantName string `json:"participant_name"`
	CourseName      string `json:"course_name"`
	CompletionDate  string `json:"completion_date"`
	InstructorName  string `json:"instructor_name"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "Markdown to PDF API is running",
		"version": h.version,
		"endpoints": map[string]string{
			"convert":     "/api/convert",
			"certificate": "/api/certificate",
			"courses":     "/api/courses",
			"health":      "/api/health",
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": serviceName,
		"version": h.version,
	})
}

func (h *Handler) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "Markdown to PDF API",
		"version":     h.version,
		"description": "Convert Markdown to professionally formatted PDF documents",
		"features": []string{
			"Markdown parsing with GFM extensions",
			"Beautiful PDF styling",
			"Tables and code blocks support",
			"Syntax highlighting",
			"A4 page format",
			"Participation certificate generation",
		},
		"tech_stack": map[string]string{
			"language":        "Go",
			"framework":       "net/http",
			"markdown_parser": "goldmark",
			"pdf_generator":   "headless Chromium (go-rod)",
		},
	})
}

func (h *Handler) handleCourses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"courses": docforge.Courses(),
	})
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if req.Filename == "" {
		req.Filename = defaultFilename
	}

	h.logger.Info("converting markdown to PDF", "markdown_chars", len(req.Markdown))

	pdfBytes, err := h.conv.Convert(r.Context(), docforge.ConversionInput{Markdown: req.Markdown})
	if err != nil {
		renderCount.WithLabelValues(kindDocument, outcomeFailed).Inc()
		h.logger.Error("markdown conversion failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to convert markdown to PDF: "+err.Error())
		return
	}

	renderCount.WithLabelValues(kindDocument, outcomeOK).Inc()
	h.logger.Info("PDF generated", "size_bytes", len(pdfBytes))
	writePDF(w, pdfBytes, req.Filename)
}

func (h *Handler) handleCertificate(w http.ResponseWriter, r *http.Request) {
	var req certificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	pdfBytes, filename, err := h.conv.IssueCertificate(r.Context(), docforge.CertificateInput{
		ParticipantName: req.ParticipantName,
		CourseName:      req.CourseName,
		CompletionDate:  req.CompletionDate,
		InstructorName:  req.InstructorName,
	})
	switch {
	case errors.Is(err, docforge.ErrUnknownCourse):
		renderCount.WithLabelValues(kindCertificate, outcomeRejected).Inc()
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Unknown course: %s", req.CourseName))
		return
	case errors.Is(err, docforge.ErrMissingParticipant):
		renderCount.WithLabelValues(kindCertificate, outcomeRejected).Inc()
		writeDetail(w, http.StatusBadRequest, "Participant name is required")
		return
	case err != nil:
		renderCount.WithLabelValues(kindCertificate, outcomeFailed).Inc()
		h.logger.Error("certificate generation failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to generate certificate: "+err.Error())
		return
	}

	renderCount.WithLabelValues(kindCertificate, outcomeOK).Inc()
	h.logger.Info("certificate generated",
		"participant", req.ParticipantName,
		"course", req.CourseName,
	)
	writePDF(w, pdfBytes, filename)
}

// writePDF sends a PDF byte buffer as a file download.
func writePDF(w http.ResponseWriter, pdfBytes []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// writeJSON sends v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail sends the {"detail": ...} error envelope.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
