package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simplisafe.com/falcon/core"
)

func TestCameraFromClient(t *testing.T) {
	t.Run("maps only the fields present", func(t *testing.T) {
		updates := CameraFromClient(CameraSubscriptionInput{
			Sid:     1001,
			Uid:     77,
			PlanSku: strPtr("SSVM1"),
			Expires: intPtr(1700000000),
		})

		assert.Equal(t, Row{"plan_sku": "SSVM1", "expires": int64(1700000000)}, updates)
	})

	t.Run("trialUsed is tri-state", func(t *testing.T) {
		updates := CameraFromClient(CameraSubscriptionInput{Sid: 1, Uid: 1})
		_, ok := updates["trial_used"]
		assert.False(t, ok)

		updates = CameraFromClient(CameraSubscriptionInput{Sid: 1, Uid: 1, TrialUsed: boolPtr(false)})
		assert.Equal(t, int64(0), updates["trial_used"])

		updates = CameraFromClient(CameraSubscriptionInput{Sid: 1, Uid: 1, TrialUsed: boolPtr(true)})
		assert.Equal(t, int64(1), updates["trial_used"])
	})
}

func TestCameraToClient(t *testing.T) {
	row := Row{
		"uid":                int64(77),
		"sid":                int64(1001),
		"uuid":               []byte("abcdef0123456789"),
		"recording_lifetime": int64(core.OneMonthInSeconds),
		"plan_sku":           "SSVM1",
		"price":              9.99,
		"trial_used":         int64(1),
	}

	dto := CameraToClient(row)

	assert.Equal(t, "abcdef0123456789", dto.Uuid)
	assert.Equal(t, int64(core.OneMonthInSeconds), dto.RecordingLifetime)
	assert.Equal(t, 9.99, dto.Price)
	assert.True(t, dto.TrialUsed)
}

func TestCameraCreateDefaults(t *testing.T) {
	defaults := CameraCreateDefaults()

	assert.Equal(t, core.PlanCameraDefault, defaults["plan_sku"])
	assert.Equal(t, int64(core.OneMonthInSeconds), defaults["recording_lifetime"])
	assert.Equal(t, int64(core.OneMonthInSeconds), defaults["time"])
	assert.Equal(t, int64(0), defaults["canceled"])
	assert.Equal(t, int64(0), defaults["trial_used"])
	assert.Greater(t, asInt(defaults, "expires"), asInt(defaults, "created"))
}

func TestCleanCamera(t *testing.T) {
	row := Row{
		"sid":      int64(1001),
		"uuid":     "abc",
		"plan_sku": "SSVM1",
		"currency": "USD",
	}

	clean := CleanCamera(row)

	assert.Equal(t, Row{"sid": int64(1001), "uuid": "abc", "plan_sku": "SSVM1"}, clean)
}
