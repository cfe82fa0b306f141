package subscription

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/model"
	"simplisafe.com/falcon/utils"
	"simplisafe.com/falcon/web/common"
)

type Endpoint struct {
	db    *gorm.DB
	codes model.CodeResolver
}

func Register(r *gin.RouterGroup, db *gorm.DB, codes model.CodeResolver) {
	endpoint := &Endpoint{db: db, codes: codes}
	r.GET("/subscriptions/:sid", endpoint.Get)
	r.PUT("/subscriptions/:sid", endpoint.Update)
	r.GET("/subscriptions/user/:uid", endpoint.ByUser)
	r.POST("/subscriptions/plan/:sku", endpoint.Create)
	r.POST("/subscriptions/:sid/apply/:sku", endpoint.ApplyPlan)
}

var skuPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func pathInt(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		common.AbortWithError(c, core.ValidationError("Param '"+name+"' must be a number"))
		return 0, false
	}
	return v, true
}

// Get returns a subscription together with its location.
func (ep *Endpoint) Get(c *gin.Context) {
	sid, ok := pathInt(c, "sid")
	if !ok {
		return
	}

	subscription, err := model.SubscriptionBySid(ep.db, sid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	location, err := model.LocationBySid(ep.db, sid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	subscriptionDTO, err := subscription.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	locationDTO, err := location.ToClient()
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": subscriptionDTO,
		"location":     locationDTO,
	})
}

// Update applies a partial update to a subscription by sid.
func (ep *Endpoint) Update(c *gin.Context) {
	sid, ok := pathInt(c, "sid")
	if !ok {
		return
	}

	var in model.SubscriptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.AbortWithBindingError(c, err)
		return
	}

	subscription, err := model.SubscriptionBySid(ep.db, sid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if err := subscription.Update(ep.db, ep.codes, common.Actor(c), in); err != nil {
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

type userEntry struct {
	Subscription model.SubscriptionDTO `json:"subscription"`
	Location     *model.LocationDTO    `json:"location,omitempty"`
}

// ByUser returns every subscription a user owns, paired with its location
// when one exists, most active first.
func (ep *Endpoint) ByUser(c *gin.Context) {
	uid, ok := pathInt(c, "uid")
	if !ok {
		return
	}

	subscriptions, err := model.SubscriptionsByUid(ep.db, uid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	locations, err := model.LocationsByUid(ep.db, uid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	entries := make([]userEntry, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		dto, err := subscription.ToClient()
		if err != nil {
			common.AbortWithError(c, err)
			return
		}

		entry := userEntry{Subscription: dto}

		sid := subscription.Sid()
		if match := utils.Find(locations, func(l *model.Location) bool { return l.Sid() == sid }); match != nil {
			locationDTO, err := (*match).ToClient()
			if err != nil {
				common.AbortWithError(c, err)
				return
			}
			entry.Location = &locationDTO
		}

		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":           uid,
		"subscriptions": entries,
	})
}

// Create inserts a new subscription on the plan named by sku.
func (ep *Endpoint) Create(c *gin.Context) {
	sku := c.Param("sku")
	if !skuPattern.MatchString(sku) {
		common.AbortWithError(c, core.ValidationError("Param 'sku' must be alphanumeric"))
		return
	}

	var in model.SubscriptionCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.AbortWithBindingError(c, err)
		return
	}

	plan, err := model.PlanBySku(ep.db, sku)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	subscription, err := model.CreateSubscription(ep.db, in, plan)
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

// ApplyPlan overwrites a subscription's plan-owned fields with the plan
// named by sku. Plans from another country are rejected before the model
// is touched.
func (ep *Endpoint) ApplyPlan(c *gin.Context) {
	sid, ok := pathInt(c, "sid")
	if !ok {
		return
	}
	sku := c.Param("sku")
	if !skuPattern.MatchString(sku) {
		common.AbortWithError(c, core.ValidationError("Param 'sku' must be alphanumeric"))
		return
	}

	plan, err := model.PlanBySku(ep.db, sku)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	subscription, err := model.SubscriptionBySid(ep.db, sid)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if plan.Country() != subscription.Country() {
		common.AbortWithError(c, core.InvalidParameter(
			"Cannot apply a plan with a different country: <"+plan.Country()+"> to this subscription with country: <"+subscription.Country()+">"))
		return
	}

	if err := subscription.ApplyPlan(ep.db, common.Actor(c), plan); err != nil {
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
