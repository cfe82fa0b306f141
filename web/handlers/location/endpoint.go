package location

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/model"
	"simplisafe.com/falcon/web/common"
)

type Endpoint struct {
	db    *gorm.DB
	codes model.CodeResolver
}

func Register(r *gin.RouterGroup, db *gorm.DB, codes model.CodeResolver) {
	endpoint := &Endpoint{db: db, codes: codes}
	r.PUT("/locations/:sid", endpoint.Update)
}

// Update applies a partial update to a location by sid.
func (ep *Endpoint) Update(c *gin.Context) {
	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		common.AbortWithError(c, core.ValidationError("Param 'sid' must be a number"))
		return
	}

	var in model.LocationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.AbortWithBindingError(c, err)
		return
	}

	location, err := model.LocationBySid(ep.db, sid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if err := location.Update(ep.db, ep.codes, common.Actor(c), in); err != nil {
		common.AbortWithError(c, err)
		return
	}

	dto, err := location.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": dto})
}
