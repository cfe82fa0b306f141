package model

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/utils"
)

// Subscription is a handle on one loaded ss_service row. Handles are only
// produced by the lookup functions below; every operation guards on the
// row actually having been loaded.
type Subscription struct {
	row    Row
	loaded bool
}

func newSubscription(row Row) *Subscription {
	return &Subscription{row: row, loaded: true}
}

// ToClient returns the client shape of the loaded row.
func (s *Subscription) ToClient() (SubscriptionDTO, error) {
	if !s.loaded {
		return SubscriptionDTO{}, core.ServerError("Subscription was not loaded, cannot return subscription")
	}

	data, err := DecodeFeatureData(asStr(s.row, "data"))
	if err != nil {
		return SubscriptionDTO{}, err
	}

	return SubscriptionToClient(s.row, data), nil
}

// Update merges a partial client update into the loaded row and persists
// it. Country and currency codes are resolved to their numeric ids; a code
// that resolves to nothing leaves the id column untouched. The feature
// data blob is decoded, merged with any feature delta and re-encoded on
// every update.
func (s *Subscription) Update(db *gorm.DB, codes CodeResolver, actor int64, in SubscriptionInput) error {
	if !s.loaded {
		return core.ServerError("Subscription was not loaded, cannot update subscription")
	}

	if err := s.apply(codes, in); err != nil {
		return err
	}

	return s.Save(db, actor)
}

// apply performs the resolve/decode/merge steps of Update without
// persisting anything.
func (s *Subscription) apply(codes CodeResolver, in SubscriptionInput) error {
	updates := SubscriptionFromClient(in)

	if country := asStr(updates, "country"); country != "" {
		id, ok, err := codes.CountryID(country)
		if err != nil {
			return err
		}
		if ok {
			updates["country_id"] = id
		}
	}

	if currency := asStr(updates, "currency"); currency != "" {
		id, ok, err := codes.CurrencyID(currency)
		if err != nil {
			return err
		}
		if ok {
			updates["currency_id"] = id
		}
	}

	data, err := DecodeFeatureData(asStr(s.row, "data"))
	if err != nil {
		return err
	}

	if in.Features != nil {
		data = data.Merge(DataFromFeatures(*in.Features))
	}

	if in.UpgradeStatus != nil {
		status := *in.UpgradeStatus
		data.UpgradeStatus = &status
		s.row["upgradeStatus"] = status
	}

	encoded, err := data.Encode()
	if err != nil {
		return err
	}
	updates["data"] = encoded

	s.row.Merge(updates)
	return nil
}

// Save persists the cleaned row keyed by sid, then appends the audit copy.
// The two statements are sequential and uncommitted as a pair; a crash in
// between leaves the primary row updated without an audit row.
func (s *Subscription) Save(db *gorm.DB, actor int64) error {
	if !s.loaded {
		return core.ServerError("Subscription was not loaded, cannot save subscription")
	}
	sid := asInt(s.row, "sid")
	if sid == 0 {
		return core.ServerError("Subscription must have a sid to be saved")
	}

	subscription := CleanSubscription(s.row)
	if err := db.Table("ss_service").Where("sid = ?", sid).Updates(map[string]any(subscription)).Error; err != nil {
		return err
	}

	audit := subscription.Clone()
	delete(audit, "order_id")
	audit["edit_uid"] = actor
	audit["timestamp"] = time.Now().Unix()

	return db.Table("ss_service_AUDIT").Create(map[string]any(audit)).Error
}

// ApplyPlan overwrites the plan-owned fields of the subscription with the
// plan row and persists. Monitored plans cannot be downgraded to camera
// plans.
func (s *Subscription) ApplyPlan(db *gorm.DB, actor int64, plan *Plan) error {
	if !s.loaded {
		return core.ServerError("Subscription was not loaded, cannot apply plan to subscription")
	}

	planRow, err := plan.ToInternal()
	if err != nil {
		return err
	}

	if core.IsDowngradeToCamera(asStr(s.row, "plan_sku"), asStr(planRow, "plan_sku")) {
		return core.InvalidParameter("Cannot downgrade a monitored plan to a camera plan")
	}

	s.row.Merge(planRow)

	return s.Save(db, actor)
}

// Sid is the primary key of the loaded row.
func (s *Subscription) Sid() int64 {
	return asInt(s.row, "sid")
}

// Country is the ISO code joined onto the row at load time.
func (s *Subscription) Country() string {
	return asStr(s.row, "country")
}

const subscriptionSelect = "ss_service.*, currencies.code AS currency, uc_countries.country_iso_code_2 AS country, %[1]s.cc_type, %[1]s.last_four"

func subscriptionQuery(db *gorm.DB) *gorm.DB {
	profiles := paymentProfilesTable
	return db.Table("ss_service").
		Select(fmt.Sprintf(subscriptionSelect, profiles)).
		Joins("INNER JOIN currencies ON ss_service.currency_id = currencies.id").
		Joins("INNER JOIN uc_countries ON ss_service.country_id = uc_countries.country_id").
		Joins(fmt.Sprintf("LEFT JOIN %[1]s ON ss_service.cim_ppid = %[1]s.customer_payment_profile_id", profiles))
}

// SubscriptionBySid returns the single subscription with this sid.
func SubscriptionBySid(db *gorm.DB, sid int64) (*Subscription, error) {
	var row Row
	err := subscriptionQuery(db).Where("sid = ?", sid).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("Could not find Subscription")
	}
	if err != nil {
		return nil, err
	}
	return newSubscription(row), nil
}

// SubscriptionByAccount returns the most active subscription on an
// account: when several rows share the account, the highest status ordinal
// wins.
func SubscriptionByAccount(db *gorm.DB, account string) (*Subscription, error) {
	var row Row
	err := subscriptionQuery(db).
		Joins("INNER JOIN ss_location ON ss_service.sid = ss_location.sid").
		Where("account = ?", account).
		Order("s_status DESC").Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("Could not find Subscription")
	}
	if err != nil {
		return nil, err
	}
	return newSubscription(row), nil
}

// SubscriptionsByUid returns every subscription owned by uid, most active
// first. No match is an empty list, not an error.
func SubscriptionsByUid(db *gorm.DB, uid int64) ([]*Subscription, error) {
	var rows []Row
	err := subscriptionQuery(db).Where("uid = ?", uid).Order("s_status DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(rows, newSubscription), nil
}

// CreateSubscription inserts a new defaulted service row for the plan and
// returns it re-fetched by its assigned sid, so database-side defaults are
// reflected in the handle.
func CreateSubscription(db *gorm.DB, in SubscriptionCreateInput, plan *Plan) (*Subscription, error) {
	base, err := plan.ToInternal()
	if err != nil {
		return nil, err
	}

	fields := SubscriptionFromClient(SubscriptionInput{
		Uid:            in.Uid,
		OrderId:        in.OrderId,
		OrderProductId: in.OrderProductId,
		ActivationCode: in.ActivationCode,
		CreditCard:     in.CreditCard,
	})
	fields.Merge(base)

	row := NewSubscriptionRow(fields)
	if dispatcher, ok := core.DispatcherFromCountryID[asInt(row, "country_id")]; ok {
		row["dispatch_name"] = dispatcher
	}

	insert := CleanSubscription(row)

	var sid int64
	err = db.Connection(func(tx *gorm.DB) error {
		if err := tx.Table("ss_service").Create(map[string]any(insert)).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT LAST_INSERT_ID()").Scan(&sid).Error
	})
	if err != nil {
		return nil, err
	}

	return SubscriptionBySid(db, sid)
}
