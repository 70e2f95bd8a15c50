package docforge

// courseCatalog is the fixed IntelliForge Learning course list. The order is
// part of the API contract: /api/courses returns it verbatim. Never mutated
// after process start.
var courseCatalog = [...]string{
	"AI Product Development Fundamentals",
	"Building AI-Powered Applications",
	"Prompt Engineering & LLM Integration",
	"Full-Stack AI Development",
	"AI Product Design & UX",
	"Digital Profile Creation",
	"Deploying AI Solutions",
}

// Courses returns the course catalog in its fixed order.
// The returned slice is a copy; callers cannot mutate the catalog.
func Courses() []string {
	out := make([]string, len(courseCatalog))
	copy(out, courseCatalog[:])
	return out
}

// KnownCourse reports whether name is a catalog entry. Comparison is exact:
// no trimming or case folding, mirroring the certificate endpoint contract.
func KnownCourse(name string) bool {
	for _, c := range courseCatalog {
		if c == name {
			return true
		}
	}
	return false
}
