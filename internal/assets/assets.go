// Package assets provides the embedded HTML skeletons used for PDF
// generation: the generic styled document wrapper and the certificate
// themes. Skeletons are compiled into the binary via go:embed and are
// read-only after startup.
package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/*.html
var templates embed.FS

const (
	documentSkeleton = "templates/document.html"
	themePrefix      = "templates/certificate_"
	themeSuffix      = ".html"
)

// DefaultTheme is the certificate skeleton used when none is configured.
const DefaultTheme = "classic"

// LoadDocumentSkeleton returns the generic document skeleton with a
// {{.Content}} hole for the converted markdown fragment.
func LoadDocumentSkeleton() (string, error) {
	content, err := templates.ReadFile(documentSkeleton)
	if err != nil {
		return "", fmt.Errorf("reading document skeleton: %w", err)
	}
	return string(content), nil
}

// LoadCertificateTheme returns the certificate skeleton for the named theme.
// The name must not include path components or an extension.
// Returns ErrThemeNotFound if no such theme is embedded.
func LoadCertificateTheme(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile(themePrefix + name + themeSuffix)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	return string(content), nil
}

// CertificateThemes lists the embedded theme names in sorted order.
func CertificateThemes() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		// The directory is embedded at compile time; failure to read it
		// is a programmer error.
		panic("assets: embedded templates unreadable: " + err.Error())
	}

	var names []string
	for _, e := range entries {
		full := "templates/" + e.Name()
		if strings.HasPrefix(full, themePrefix) && strings.HasSuffix(full, themeSuffix) {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(full, themePrefix), themeSuffix))
		}
	}
	sort.Strings(names)
	return names
}

// KnownTheme reports whether name is an embedded certificate theme.
func KnownTheme(name string) bool {
	for _, t := range CertificateThemes() {
		if t == name {
			return true
		}
	}
	return false
}
