package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCountry(t *testing.T) {
	assert.Equal(t, "SSEDCM1", StripCountry("SSEDCM1_GB"))
	assert.Equal(t, "SSEDSM2", StripCountry("SSEDSM2"))
	assert.Equal(t, "SSBCV1", StripCountry("SSBCV1_GB_X"))
}

func TestIsDowngradeToCamera(t *testing.T) {
	tests := []struct {
		name       string
		currentSku string
		newSku     string
		expected   bool
	}{
		{
			name:       "monitored to camera is a downgrade",
			currentSku: "SSEDSM2",
			newSku:     "SSEDCM1",
			expected:   true,
		},
		{
			name:       "monitored to camera unlimited is a downgrade",
			currentSku: "SSEDBM1",
			newSku:     "SSEDCMU",
			expected:   true,
		},
		{
			name:       "camera to camera is allowed",
			currentSku: "SSEDCM1",
			newSku:     "SSEDCMU",
			expected:   false,
		},
		{
			name:       "blank to camera is allowed",
			currentSku: "SSBCV1",
			newSku:     "SSEDCM1",
			expected:   false,
		},
		{
			name:       "camera to monitored is allowed",
			currentSku: "SSEDCM1",
			newSku:     "SSEDSM2",
			expected:   false,
		},
		{
			name:       "monitored to monitored is allowed",
			currentSku: "SSEDBM1",
			newSku:     "SSEDSM2",
			expected:   false,
		},
		{
			name:       "country variants are classified on the base sku",
			currentSku: "SSEDSM2_GB",
			newSku:     "SSEDCM1_GB",
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDowngradeToCamera(tt.currentSku, tt.newSku))
		})
	}
}
