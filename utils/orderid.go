package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderID produces an order identifier of the form
// ORD-<unix-millis>-<8 hex chars>. The millisecond timestamp keeps ids
// roughly ordered; the random suffix comes from a v4 UUID so collisions are
// negligible even for orders placed in the same millisecond.
func GenerateOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
