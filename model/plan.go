package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/utils"
)

// Plan is a handle on one loaded ss_service_plan row. Plans are read only:
// they are applied to subscriptions, never updated through this service.
type Plan struct {
	row    Row
	loaded bool
}

func newPlan(row Row) *Plan {
	return &Plan{row: row, loaded: true}
}

// PlanDTO is the client shape of a service plan.
type PlanDTO struct {
	PlanSku       string      `json:"planSku"`
	Time          int64       `json:"time"`
	Renew         int64       `json:"renew"`
	Price         float64     `json:"price"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Features      FeaturesDTO `json:"features"`
	SystemVersion int64       `json:"systemVersion"`
	Currency      string      `json:"currency"`
	Country       string      `json:"country"`
}

// ToClient returns the client shape of the loaded plan, with the feature
// blob decoded into the flat features object.
func (p *Plan) ToClient() (PlanDTO, error) {
	if !p.loaded {
		return PlanDTO{}, core.ServerError("Tried to call toClient when no plan was loaded")
	}

	data, err := DecodeFeatureData(asStr(p.row, "data"))
	if err != nil {
		return PlanDTO{}, err
	}

	return PlanDTO{
		PlanSku:       asStr(p.row, "plan_sku"),
		Time:          asInt(p.row, "time"),
		Renew:         asInt(p.row, "renew"),
		Price:         asFloat(p.row, "price"),
		Name:          asStr(p.row, "name"),
		Description:   asStr(p.row, "description"),
		Features:      FeaturesFromData(data),
		SystemVersion: asInt(p.row, "system_version"),
		Currency:      asStr(p.row, "currency"),
		Country:       asStr(p.row, "country"),
	}, nil
}

// ToInternal returns the raw plan row as stored, for merging into a
// subscription. Join-only fields (country, currency) ride along and are
// stripped by the subscription's column allowlist at save time.
func (p *Plan) ToInternal() (Row, error) {
	if !p.loaded {
		return nil, core.ServerError("Tried to call toInternal when no plan was loaded")
	}
	return p.row.Clone(), nil
}

// Country is the ISO 3166-1 alpha-2 code the plan is sold in.
func (p *Plan) Country() string {
	return asStr(p.row, "country")
}

func planQuery(db *gorm.DB) *gorm.DB {
	return db.Table("ss_service_plan").
		Select("ss_service_plan.*, uc_countries.country_iso_code_2 AS country, currencies.code AS currency").
		Joins("INNER JOIN uc_countries ON ss_service_plan.country_id = uc_countries.country_id").
		Joins("INNER JOIN currencies ON ss_service_plan.currency_id = currencies.id")
}

// PlanBySku returns the single plan with this sku.
func PlanBySku(db *gorm.DB, sku string) (*Plan, error) {
	var row Row
	err := planQuery(db).Where("ss_service_plan.plan_sku = ?", sku).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound(fmt.Sprintf("Plan could not be found for sku: %s", sku))
	}
	if err != nil {
		return nil, err
	}
	return newPlan(row), nil
}

// PlansByCountry returns every plan sold in a country. No match is an
// empty list, not an error.
func PlansByCountry(db *gorm.DB, country string) ([]*Plan, error) {
	var rows []Row
	err := planQuery(db).Where("uc_countries.country_iso_code_2 = ?", country).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(rows, newPlan), nil
}
