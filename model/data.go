package model

import (
	"encoding/json"

	"simplisafe.com/falcon/core"
)

// FeatureFlag is one on/off feature inside the subscription data blob.
type FeatureFlag struct {
	Enable int64 `json:"enable"`
}

// CameraFeature carries a camera count on top of the enable bit. The enable
// bit is always derived from the count, never set independently.
type CameraFeature struct {
	Enable int64 `json:"enable"`
	Value  int64 `json:"value"`
}

type FeatureSet struct {
	Monitoring *FeatureFlag   `json:"monitoring,omitempty"`
	Alerts     *FeatureFlag   `json:"alerts,omitempty"`
	Online     *FeatureFlag   `json:"online,omitempty"`
	Hazard     *FeatureFlag   `json:"hazard,omitempty"`
	Video      *FeatureFlag   `json:"video,omitempty"`
	Cameras    *CameraFeature `json:"cameras,omitempty"`
}

// FeatureData is the decoded form of the opaque `data` column on
// ss_service and ss_service_plan rows.
type FeatureData struct {
	Features      FeatureSet `json:"features"`
	UpgradeStatus *int64     `json:"upgrade_status,omitempty"`
}

// DecodeFeatureData parses the data column. An empty column decodes to the
// empty value; anything else that fails to parse is a hard error, never
// silently treated as empty.
func DecodeFeatureData(raw string) (FeatureData, error) {
	var data FeatureData
	if raw == "" {
		return data, nil
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return FeatureData{}, core.BadSubscriptionData("No Data available on subscription", err)
	}
	return data, nil
}

func (d FeatureData) Encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", core.ServerError("could not encode subscription data")
	}
	return string(b), nil
}

// Merge overlays delta on d. Features absent from delta are preserved.
func (d FeatureData) Merge(delta FeatureData) FeatureData {
	out := d
	if delta.Features.Monitoring != nil {
		out.Features.Monitoring = delta.Features.Monitoring
	}
	if delta.Features.Alerts != nil {
		out.Features.Alerts = delta.Features.Alerts
	}
	if delta.Features.Online != nil {
		out.Features.Online = delta.Features.Online
	}
	if delta.Features.Hazard != nil {
		out.Features.Hazard = delta.Features.Hazard
	}
	if delta.Features.Video != nil {
		out.Features.Video = delta.Features.Video
	}
	if delta.Features.Cameras != nil {
		out.Features.Cameras = delta.Features.Cameras
	}
	if delta.UpgradeStatus != nil {
		out.UpgradeStatus = delta.UpgradeStatus
	}
	return out
}

// FeaturesDTO is the client-facing shape of the feature bitset.
type FeaturesDTO struct {
	Monitoring bool  `json:"monitoring"`
	Alerts     bool  `json:"alerts"`
	Online     bool  `json:"online"`
	Hazard     bool  `json:"hazard"`
	Video      bool  `json:"video"`
	Cameras    int64 `json:"cameras"`
}

// FeaturesInput is the partial client shape on subscription updates.
type FeaturesInput struct {
	Monitoring *bool  `json:"monitoring"`
	Alerts     *bool  `json:"alerts"`
	Online     *bool  `json:"online"`
	Hazard     *bool  `json:"hazard"`
	Video      *bool  `json:"video"`
	Cameras    *int64 `json:"cameras"`
}

// FeaturesFromData flattens decoded feature data into the client shape.
// Missing features decode to false/0.
func FeaturesFromData(data FeatureData) FeaturesDTO {
	out := FeaturesDTO{}
	if f := data.Features.Monitoring; f != nil {
		out.Monitoring = f.Enable != 0
	}
	if f := data.Features.Alerts; f != nil {
		out.Alerts = f.Enable != 0
	}
	if f := data.Features.Online; f != nil {
		out.Online = f.Enable != 0
	}
	if f := data.Features.Hazard; f != nil {
		out.Hazard = f.Enable != 0
	}
	if f := data.Features.Video; f != nil {
		out.Video = f.Enable != 0
	}
	if f := data.Features.Cameras; f != nil {
		out.Cameras = f.Value
	}
	return out
}

// DataFromFeatures builds a feature delta from the client shape. Only
// features the client sent are present in the delta. The cameras enable bit
// is derived from the count's sign.
func DataFromFeatures(in FeaturesInput) FeatureData {
	var delta FeatureData
	if in.Monitoring != nil {
		delta.Features.Monitoring = &FeatureFlag{Enable: boolToInt(*in.Monitoring)}
	}
	if in.Alerts != nil {
		delta.Features.Alerts = &FeatureFlag{Enable: boolToInt(*in.Alerts)}
	}
	if in.Online != nil {
		delta.Features.Online = &FeatureFlag{Enable: boolToInt(*in.Online)}
	}
	if in.Hazard != nil {
		delta.Features.Hazard = &FeatureFlag{Enable: boolToInt(*in.Hazard)}
	}
	if in.Video != nil {
		delta.Features.Video = &FeatureFlag{Enable: boolToInt(*in.Video)}
	}
	if in.Cameras != nil {
		enable := int64(0)
		if *in.Cameras > 0 {
			enable = 1
		}
		delta.Features.Cameras = &CameraFeature{Enable: enable, Value: *in.Cameras}
	}
	return delta
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
