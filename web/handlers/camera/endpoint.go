package camera

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
	db *gorm.DB
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{db: db}
	r.GET("/cameras", endpoint.List)
	r.GET("/cameras/:uuid", endpoint.Get)
	r.POST("/cameras/:uuid", endpoint.Create)
	r.PUT("/cameras/:uuid", endpoint.Update)
	r.POST("/cameras/:uuid/:sid/cancel", endpoint.Cancel)
	r.POST("/cameras/:uuid/:sid/activate", endpoint.Activate)
}

func queryInt(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Get returns the camera service for a uuid and the sid query parameter.
func (ep *Endpoint) Get(c *gin.Context) {
	uuid := c.Param("uuid")
	sid, ok := queryInt(c, "sid")
	if !ok {
		common.AbortWithError(c, core.ValidationError("Query 'sid' is required and must be a number"))
		return
	}

	subscription, err := model.CameraSubscriptionBySidUuid(ep.db, sid, uuid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	dto, err := subscription.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": dto})
}

// List returns every camera service on a sid or uid, echoing whichever
// key was used.
func (ep *Endpoint) List(c *gin.Context) {
	sid, haveSid := queryInt(c, "sid")
	uid, haveUid := queryInt(c, "uid")
	if !haveSid && !haveUid {
		common.AbortWithError(c, core.InvalidParameter("Uid or Sid must be given"))
		return
	}

	var (
		subscriptions []*model.CameraSubscription
		err           error
	)
	if haveSid {
		subscriptions, err = model.CameraSubscriptionsBySid(ep.db, sid)
	} else {
		subscriptions, err = model.CameraSubscriptionsByUid(ep.db, uid)
	}
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	dtos := make([]model.CameraSubscriptionDTO, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		dto, err := subscription.ToClient()
		if err != nil {
			common.AbortWithError(c, err)
			return
		}
		dtos = append(dtos, dto)
	}

	body := gin.H{"subscriptions": dtos}
	if haveSid {
		body["sid"] = sid
	}
	if haveUid {
		body["uid"] = uid
	}

	c.JSON(http.StatusOK, body)
}

// Create inserts a new camera service for the uuid and the sid in the body.
func (ep *Endpoint) Create(c *gin.Context) {
	uuid := c.Param("uuid")

	var in model.CameraSubscriptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.AbortWithBindingError(c, err)
		return
	}

	subscription, err := model.CreateCameraSubscription(ep.db, uuid, in)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	dto, err := subscription.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": dto})
}

// Update applies a partial update to the camera service keyed by the uuid
// and the sid in the body.
func (ep *Endpoint) Update(c *gin.Context) {
	uuid := c.Param("uuid")

	var in model.CameraSubscriptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.AbortWithBindingError(c, err)
		return
	}

	subscription, err := model.CameraSubscriptionBySidUuid(ep.db, in.Sid, uuid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if err := subscription.Update(ep.db, common.Actor(c), in); err != nil {
		common.AbortWithError(c, err)
		return
	}

	dto, err := subscription.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": dto})
}

func (ep *Endpoint) Cancel(c *gin.Context) {
	ep.transition(c, (*model.CameraSubscription).Cancel)
}

func (ep *Endpoint) Activate(c *gin.Context) {
	ep.transition(c, (*model.CameraSubscription).Activate)
}

func (ep *Endpoint) transition(c *gin.Context, op func(*model.CameraSubscription, *gorm.DB, int64) error) {
	uuid := c.Param("uuid")
	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		common.AbortWithError(c, core.ValidationError("Param 'sid' must be a number"))
		return
	}

	subscription, err := model.CameraSubscriptionBySidUuid(ep.db, sid, uuid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if err := op(subscription, ep.db, common.Actor(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	dto, err := subscription.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": dto})
}
