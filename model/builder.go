package model

import (
	"time"

	"simplisafe.com/falcon/core"
)

// NewSubscriptionRow projects fields onto a fully-defaulted base service
// row. Caller fields win over defaults; keys outside the base set are
// dropped, so join artifacts on a plan row never leak into the insert.
func NewSubscriptionRow(fields Row) Row {
	now := time.Now().Unix()
	return Row{
		"uid":              valueOr(fields, "uid", int64(-1)),
		"order_product_id": valueOr(fields, "order_product_id", int64(0)),
		"plan_sku":         valueOr(fields, "plan_sku", ""),
		"name":             valueOr(fields, "name", ""),
		"created":          valueOr(fields, "created", now),
		"activated":        valueOr(fields, "activated", int64(0)),
		"expires":          valueOr(fields, "expires", int64(0)),
		"canceled":         valueOr(fields, "canceled", int64(0)),
		"time":             valueOr(fields, "time", int64(core.OneMonthInSeconds)),
		"extra_time":       valueOr(fields, "extra_time", int64(0)),
		"renew":            valueOr(fields, "renew", int64(-1)),
		"price":            valueOr(fields, "price", float64(0)),
		"extra_charge":     valueOr(fields, "extra_charge", float64(0)),
		"s_status":         valueOr(fields, "s_status", int64(core.ServiceNotActivated)),
		"cim_ppid":         valueOr(fields, "cim_ppid", int64(0)),
		"cim_uid":          valueOr(fields, "cim_uid", int64(-1)),
		"activation_code":  valueOr(fields, "activation_code", ""),
		"data":             valueOr(fields, "data", ""),
		"last_signal":      valueOr(fields, "last_signal", int64(0)),
		"cancel_reason":    valueOr(fields, "cancel_reason", nil),
		"system_version":   valueOr(fields, "system_version", int64(20)),
		"dcid":             valueOr(fields, "dcid", int64(0)),
		"dispatch_name":    valueOr(fields, "dispatch_name", "cops"),
		"order_id":         valueOr(fields, "order_id", int64(0)),
		"backup_cim_ppid":  valueOr(fields, "backup_cim_ppid", nil),
		"currency_id":      valueOr(fields, "currency_id", int64(core.CountryIDUS)),
		"country_id":       valueOr(fields, "country_id", int64(core.CountryIDUS)),
	}
}

func valueOr(fields Row, key string, fallback any) any {
	if v, ok := fields[key]; ok && v != nil {
		return v
	}
	return fallback
}
