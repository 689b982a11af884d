// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxFormSize bounds control posts (sort key, filter text, email).
	MaxFormSize = 8 << 10 // 8 KB
)
