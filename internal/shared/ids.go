// Package shared holds cross-cutting helpers: id generation, the request
// clock, and session plumbing.
package shared

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed, collision-resistant record id such as
// "INQ-5f2f0c1e9b6d4a0f8c3d2e1f0a9b8c7d". Earlier releases numbered records
// sequentially, which collides under concurrent creation; seed records keep
// their historical short ids.
func NewID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
