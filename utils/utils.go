package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCertificateNumber builds a human-readable certificate number:
// CERT-<year>-<8 hex chars from a UUID>.
func GenerateCertificateNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("CERT-%d-%s", time.Now().Year(), token)
}
