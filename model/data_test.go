package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simplisafe.com/falcon/core"
)

func TestDecodeFeatureData(t *testing.T) {
	t.Run("empty column decodes to the empty value", func(t *testing.T) {
		data, err := DecodeFeatureData("")
		assert.NoError(t, err)
		assert.Equal(t, FeatureData{}, data)
	})

	t.Run("valid blob decodes features", func(t *testing.T) {
		raw := `{"features":{"monitoring":{"enable":1},"cameras":{"enable":1,"value":5}},"upgrade_status":2}`
		data, err := DecodeFeatureData(raw)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), data.Features.Monitoring.Enable)
		assert.Equal(t, int64(5), data.Features.Cameras.Value)
		assert.Equal(t, int64(2), *data.UpgradeStatus)
	})

	t.Run("malformed blob is a bad data error, not empty", func(t *testing.T) {
		_, err := DecodeFeatureData("a:1:{s:8:")
		assert.True(t, core.IsKind(err, core.KindBadSubscriptionData))
	})
}

func TestDataFromFeatures(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(n int64) *int64 { return &n }

	t.Run("camera enable bit follows the count", func(t *testing.T) {
		delta := DataFromFeatures(FeaturesInput{Cameras: intPtr(5)})
		assert.Equal(t, int64(1), delta.Features.Cameras.Enable)
		assert.Equal(t, int64(5), delta.Features.Cameras.Value)

		delta = DataFromFeatures(FeaturesInput{Cameras: intPtr(0)})
		assert.Equal(t, int64(0), delta.Features.Cameras.Enable)
		assert.Equal(t, int64(0), delta.Features.Cameras.Value)
	})

	t.Run("absent fields are absent from the delta", func(t *testing.T) {
		delta := DataFromFeatures(FeaturesInput{Video: boolPtr(true)})
		assert.Equal(t, int64(1), delta.Features.Video.Enable)
		assert.Nil(t, delta.Features.Monitoring)
		assert.Nil(t, delta.Features.Cameras)
	})

	t.Run("explicit false maps to a zero enable bit", func(t *testing.T) {
		delta := DataFromFeatures(FeaturesInput{Monitoring: boolPtr(false)})
		assert.NotNil(t, delta.Features.Monitoring)
		assert.Equal(t, int64(0), delta.Features.Monitoring.Enable)
	})
}

func TestFeatureDataMerge(t *testing.T) {
	current := FeatureData{
		Features: FeatureSet{
			Monitoring: &FeatureFlag{Enable: 1},
			Alerts:     &FeatureFlag{Enable: 1},
			Cameras:    &CameraFeature{Enable: 1, Value: 2},
		},
	}

	delta := FeatureData{
		Features: FeatureSet{
			Alerts:  &FeatureFlag{Enable: 0},
			Cameras: &CameraFeature{Enable: 1, Value: 10},
		},
	}

	merged := current.Merge(delta)
	assert.Equal(t, int64(1), merged.Features.Monitoring.Enable)
	assert.Equal(t, int64(0), merged.Features.Alerts.Enable)
	assert.Equal(t, int64(10), merged.Features.Cameras.Value)
	assert.Nil(t, merged.UpgradeStatus)
}

func TestFeaturesFromData(t *testing.T) {
	data := FeatureData{
		Features: FeatureSet{
			Monitoring: &FeatureFlag{Enable: 1},
			Video:      &FeatureFlag{Enable: 0},
			Cameras:    &CameraFeature{Enable: 1, Value: 4},
		},
	}

	flat := FeaturesFromData(data)
	assert.True(t, flat.Monitoring)
	assert.False(t, flat.Video)
	assert.False(t, flat.Alerts)
	assert.Equal(t, int64(4), flat.Cameras)
}

func TestFeatureDataEncodeRoundTrip(t *testing.T) {
	status := int64(1)
	data := FeatureData{
		Features:      FeatureSet{Online: &FeatureFlag{Enable: 1}},
		UpgradeStatus: &status,
	}

	encoded, err := data.Encode()
	assert.NoError(t, err)

	decoded, err := DecodeFeatureData(encoded)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}
