package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/utils"
)

// CameraSubscription is a handle on one loaded ss_camera_service row,
// keyed by the (sid, uuid) pair rather than a single id.
type CameraSubscription struct {
	row    Row
	loaded bool
}

func newCameraSubscription(row Row) *CameraSubscription {
	return &CameraSubscription{row: row, loaded: true}
}

// ToClient returns the client shape of the loaded row.
func (c *CameraSubscription) ToClient() (CameraSubscriptionDTO, error) {
	if !c.loaded {
		return CameraSubscriptionDTO{}, core.ServerError("Camera Subscription was not loaded, cannot call toClient")
	}
	return CameraToClient(c.row), nil
}

// Update merges a partial client update into the loaded row and persists.
func (c *CameraSubscription) Update(db *gorm.DB, actor int64, in CameraSubscriptionInput) error {
	if !c.loaded {
		return core.ServerError("Camera Subscription was not loaded, cannot update")
	}
	c.row.Merge(CameraFromClient(in))
	return c.Save(db, actor)
}

// Save persists the cleaned row keyed by the (sid, uuid) pair, then
// appends the audit copy.
func (c *CameraSubscription) Save(db *gorm.DB, actor int64) error {
	if !c.loaded {
		return core.ServerError("Camera Subscription was not loaded, cannot save")
	}

	sub := CleanCamera(c.row)
	sid, uuid := asInt(sub, "sid"), asStr(sub, "uuid")
	if sid == 0 || uuid == "" {
		return core.ServerError("Cannot Update Camera Subscription, Sid and UUID must be present")
	}

	if err := db.Table("ss_camera_service").Where("sid = ? AND uuid = ?", sid, uuid).Updates(map[string]any(sub)).Error; err != nil {
		return err
	}

	audit := sub.Clone()
	audit["edit_uid"] = actor
	audit["edit_timestamp"] = time.Now().Unix()

	return db.Table("ss_camera_service_AUDIT").Create(map[string]any(audit)).Error
}

// Cancel expires the camera service immediately.
func (c *CameraSubscription) Cancel(db *gorm.DB, actor int64) error {
	if !c.loaded {
		return core.ServerError("Camera Subscription was not loaded, cannot cancel subscription")
	}
	c.row["canceled"] = time.Now().Unix()
	c.row["expires"] = int64(0)
	return c.Save(db, actor)
}

// Activate clears the cancellation and extends the service by one month.
func (c *CameraSubscription) Activate(db *gorm.DB, actor int64) error {
	if !c.loaded {
		return core.ServerError("Camera Subscription was not loaded, cannot reactivate subscription")
	}
	c.row["canceled"] = int64(0)
	c.row["expires"] = time.Now().AddDate(0, 1, 0).Unix()
	return c.Save(db, actor)
}

// CreateCameraSubscription inserts a defaulted camera service row for the
// (sid, uuid) pair. The pair must be unique; an existing row is a
// Conflict. The new row is re-fetched by its key so database-side defaults
// are reflected in the handle.
func CreateCameraSubscription(db *gorm.DB, uuid string, in CameraSubscriptionInput) (*CameraSubscription, error) {
	var existing Row
	err := db.Table("ss_camera_service").Where("uuid = ? AND sid = ?", uuid, in.Sid).Take(&existing).Error
	if err == nil {
		return nil, core.Conflict("Camera service for this uuid and sid already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := Row{
		"uuid": uuid,
		"sid":  in.Sid,
		"uid":  in.Uid,
	}
	row.Merge(CameraFromClient(in))
	for k, v := range CameraCreateDefaults() {
		if _, ok := row[k]; !ok {
			row[k] = v
		}
	}

	if err := db.Table("ss_camera_service").Create(map[string]any(row)).Error; err != nil {
		return nil, err
	}

	return CameraSubscriptionBySidUuid(db, in.Sid, uuid)
}

// CameraSubscriptionBySidUuid returns the single row for the pair.
func CameraSubscriptionBySidUuid(db *gorm.DB, sid int64, uuid string) (*CameraSubscription, error) {
	var row Row
	err := db.Table("ss_camera_service").Where("sid = ? AND uuid = ?", sid, uuid).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("A Camera Subscription does not exist for this uuid & sid")
	}
	if err != nil {
		return nil, err
	}
	return newCameraSubscription(row), nil
}

// CameraSubscriptionsBySid returns every camera service row on a sid.
// No match is an empty list, not an error.
func CameraSubscriptionsBySid(db *gorm.DB, sid int64) ([]*CameraSubscription, error) {
	return cameraSubscriptionsWhere(db, "sid = ?", sid)
}

// CameraSubscriptionsByUid returns every camera service row owned by uid.
func CameraSubscriptionsByUid(db *gorm.DB, uid int64) ([]*CameraSubscription, error) {
	return cameraSubscriptionsWhere(db, "uid = ?", uid)
}

func cameraSubscriptionsWhere(db *gorm.DB, cond string, arg any) ([]*CameraSubscription, error) {
	var rows []Row
	err := db.Table("ss_camera_service").Where(cond, arg).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(rows, newCameraSubscription), nil
}
