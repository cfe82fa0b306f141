package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simplisafe.com/falcon/core"
)

func TestCameraSubscriptionGuards(t *testing.T) {
	var c CameraSubscription

	_, err := c.ToClient()
	assert.True(t, core.IsKind(err, core.KindServerError))

	err = c.Update(nil, 0, CameraSubscriptionInput{})
	assert.True(t, core.IsKind(err, core.KindServerError))

	err = c.Save(nil, 0)
	assert.True(t, core.IsKind(err, core.KindServerError))

	err = c.Cancel(nil, 0)
	assert.True(t, core.IsKind(err, core.KindServerError))

	err = c.Activate(nil, 0)
	assert.True(t, core.IsKind(err, core.KindServerError))
}

func TestCameraSubscriptionSaveRequiresKey(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{name: "missing uuid", row: Row{"sid": int64(1001)}},
		{name: "missing sid", row: Row{"uuid": "abc"}},
		{name: "missing both", row: Row{"plan_sku": "SSVM1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCameraSubscription(tt.row)
			err := c.Save(nil, 0)
			assert.True(t, core.IsKind(err, core.KindServerError))
			assert.Contains(t, err.Error(), "Sid and UUID must be present")
		})
	}
}
