package sizefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"typical document", 2453667, "2.34 MB"},
		{"one kilobyte rounds down", 1024, "0.00 MB"},
		{"exactly fifty megabytes", 50 * 1024 * 1024, "50.00 MB"},
		{"zero bytes", 0, "0.00 MB"},
		{"one megabyte", 1024 * 1024, "1.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.size))
		})
	}
}
