package docforge

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	certIDPrefix = "IF-"
	certIDDigits = 12
)

// CertificateID derives the public certificate identifier from the
// participant name, course name, and completion date. The three fields are
// joined verbatim with "-" (embedded dashes in a field are not escaped),
// hashed with SHA-256, and the first 12 hex digits of the digest are
// uppercased and prefixed with "IF-".
//
// Deterministic and pure: identical inputs always yield the identical ID.
// No uniqueness registry exists; duplicate requests legitimately share an
// ID. The ID is a display/verification reference, not an access credential.
func CertificateID(participant, course, date string) string {
	sum := sha256.Sum256([]byte(participant + "-" + course + "-" + date))
	digest := hex.EncodeToString(sum[:])
	return certIDPrefix + strings.ToUpper(digest[:certIDDigits])
}
