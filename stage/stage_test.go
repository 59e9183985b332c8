package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldExecute(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		configured []string
		want       bool
	}{
		{"no stages configured runs everywhere", "prod", nil, true},
		{"empty stage list runs everywhere", "dev", []string{}, true},
		{"current stage enabled", "dev", []string{"dev", "test"}, true},
		{"current stage not enabled", "prod", []string{"dev", "test"}, false},
		{"empty current stage never matches a configured list", "", []string{"dev"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldExecute(tt.current, tt.configured))
		})
	}
}
