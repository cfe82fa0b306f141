package plan

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/model"
	"simplisafe.com/falcon/web/common"
)

type Endpoint struct {
	db *gorm.DB
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{db: db}
	r.GET("/plans", endpoint.List)
}

func isAlphanum(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// List returns every plan sold in the country query parameter.
func (ep *Endpoint) List(c *gin.Context) {
	country := c.Query("country")
	if len(country) != 2 || !isAlphanum(country) {
		common.AbortWithError(c, core.ValidationError("Query 'country' is required and must be a 2 letter code"))
		return
	}
	country = strings.ToUpper(country)

	plans, err := model.PlansByCountry(ep.db, country)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	dtos := make([]model.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dto, err := plan.ToClient()
		if err != nil {
			common.AbortWithError(c, err)
			return
		}
		dtos = append(dtos, dto)
	}

	c.JSON(http.StatusOK, gin.H{
		"plans":   dtos,
		"country": country,
	})
}
