package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simplisafe.com/falcon/core"
)

func TestPlanGuards(t *testing.T) {
	var p Plan

	_, err := p.ToClient()
	assert.True(t, core.IsKind(err, core.KindServerError))

	_, err = p.ToInternal()
	assert.True(t, core.IsKind(err, core.KindServerError))
}

func TestPlanToClient(t *testing.T) {
	data := FeatureData{Features: FeatureSet{
		Monitoring: &FeatureFlag{Enable: 1},
		Cameras:    &CameraFeature{Enable: 1, Value: 10},
	}}
	encoded, err := data.Encode()
	assert.NoError(t, err)

	p := newPlan(Row{
		"plan_sku":       "SSEDSM2",
		"time":           int64(core.OneMonthInSeconds),
		"renew":          int64(1),
		"price":          24.99,
		"name":           "Interactive Monitoring",
		"description":    "24/7 monitoring with app control",
		"data":           encoded,
		"system_version": int64(20),
		"currency":       []byte("USD"),
		"country":        []byte("US"),
	})

	dto, err := p.ToClient()
	assert.NoError(t, err)
	assert.Equal(t, "SSEDSM2", dto.PlanSku)
	assert.Equal(t, 24.99, dto.Price)
	assert.True(t, dto.Features.Monitoring)
	assert.Equal(t, int64(10), dto.Features.Cameras)
	assert.Equal(t, "USD", dto.Currency)
	assert.Equal(t, "US", dto.Country)
}

func TestPlanToInternal(t *testing.T) {
	p := newPlan(Row{"plan_sku": "SSEDSM2", "country": "US"})

	row, err := p.ToInternal()
	assert.NoError(t, err)

	// The handle's own row must not be aliased by the returned copy.
	row["plan_sku"] = "mutated"
	assert.Equal(t, "SSEDSM2", p.row["plan_sku"])
}
