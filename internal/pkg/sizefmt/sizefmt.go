// Package sizefmt renders the human-readable size labels stored alongside
// catalog resources.
package sizefmt

import "fmt"

const bytesPerMB = 1024 * 1024

// Label returns the size label persisted with a resource, always in
// megabytes with two decimals ("2.34 MB"). The format is part of the stored
// data contract, so it stays fixed regardless of magnitude.
func Label(sizeBytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(sizeBytes)/bytesPerMB)
}
