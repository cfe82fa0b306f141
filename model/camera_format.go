package model

import (
	"time"

	"simplisafe.com/falcon/core"
)

// CameraSubscriptionDTO is the full client shape of a camera service row.
type CameraSubscriptionDTO struct {
	Uid               int64   `json:"uid"`
	Sid               int64   `json:"sid"`
	Uuid              string  `json:"uuid"`
	RecordingLifetime int64   `json:"recordingLifetime"`
	PlanSku           string  `json:"planSku"`
	Price             float64 `json:"price"`
	Created           int64   `json:"created"`
	Expires           int64   `json:"expires"`
	Canceled          int64   `json:"canceled"`
	Time              int64   `json:"time"`
	ExtraTime         int64   `json:"extraTime"`
	TrialUsed         bool    `json:"trialUsed"`
}

// CameraSubscriptionInput is the client shape accepted on create/update.
type CameraSubscriptionInput struct {
	Sid               int64    `json:"sid" binding:"required"`
	Uid               int64    `json:"uid" binding:"required"`
	Uuid              *string  `json:"uuid"`
	RecordingLifetime *int64   `json:"recordingLifetime"`
	PlanSku           *string  `json:"planSku"`
	Price             *float64 `json:"price"`
	Expires           *int64   `json:"expires"`
	Time              *int64   `json:"time"`
	ExtraTime         *int64   `json:"extraTime"`
	TrialUsed         *bool    `json:"trialUsed"`
}

// cameraColumns is the persisted-column allowlist for ss_camera_service.
var cameraColumns = []string{
	"csid",
	"uid",
	"sid",
	"uuid",
	"recording_lifetime",
	"plan_sku",
	"price",
	"created",
	"expires",
	"canceled",
	"time",
	"extra_time",
	"trial_used",
}

// CameraFromClient maps the fields present in the input onto storage
// columns. sid, uid and uuid never come through here; the create path sets
// them directly from the request key.
func CameraFromClient(in CameraSubscriptionInput) Row {
	updates := Row{}
	set(updates, "expires", in.Expires)
	set(updates, "time", in.Time)
	set(updates, "extra_time", in.ExtraTime)
	set(updates, "price", in.Price)
	set(updates, "recording_lifetime", in.RecordingLifetime)
	set(updates, "plan_sku", in.PlanSku)

	// Tri-state: absent means leave the column alone, false means 0.
	if in.TrialUsed != nil {
		updates["trial_used"] = boolToInt(*in.TrialUsed)
	}

	return updates
}

func CameraToClient(row Row) CameraSubscriptionDTO {
	return CameraSubscriptionDTO{
		Uid:               asInt(row, "uid"),
		Sid:               asInt(row, "sid"),
		Uuid:              asStr(row, "uuid"),
		RecordingLifetime: asInt(row, "recording_lifetime"),
		PlanSku:           asStr(row, "plan_sku"),
		Price:             asFloat(row, "price"),
		Created:           asInt(row, "created"),
		Expires:           asInt(row, "expires"),
		Canceled:          asInt(row, "canceled"),
		Time:              asInt(row, "time"),
		ExtraTime:         asInt(row, "extra_time"),
		TrialUsed:         asBool(row, "trial_used"),
	}
}

// CameraCreateDefaults is the base row for a new camera service: a one
// month video plan starting now.
func CameraCreateDefaults() Row {
	now := time.Now()
	return Row{
		"recording_lifetime": int64(core.OneMonthInSeconds),
		"plan_sku":           core.PlanCameraDefault,
		"price":              float64(0),
		"created":            now.Unix(),
		"expires":            now.AddDate(0, 1, 0).Unix(),
		"canceled":           int64(0),
		"time":               int64(core.OneMonthInSeconds),
		"extra_time":         int64(0),
		"trial_used":         int64(0),
	}
}

// CleanCamera drops everything ss_camera_service does not persist.
func CleanCamera(row Row) Row {
	return pick(row, cameraColumns)
}
