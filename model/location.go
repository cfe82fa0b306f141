package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/utils"
)

// Location is a handle on one loaded ss_location row.
type Location struct {
	row    Row
	loaded bool
}

func newLocation(row Row) *Location {
	return &Location{row: mergeLocationOffset(row), loaded: true}
}

// ToClient returns the client shape of the loaded row.
func (l *Location) ToClient() (LocationDTO, error) {
	if !l.loaded {
		return LocationDTO{}, core.ServerError("Location was not loaded, cannot return location")
	}
	return LocationToClient(l.row), nil
}

// Update merges a partial client update into the loaded row, re-resolves
// the country id (defaulting to US when the code is unknown), stamps
// modified, persists and appends the audit copy.
func (l *Location) Update(db *gorm.DB, codes CodeResolver, actor int64, in LocationInput) error {
	if !l.loaded {
		return core.ServerError("Location was not loaded, cannot update location")
	}

	l.row.Merge(LocationFromClient(in))

	countryID := int64(core.CountryIDUS)
	if id, ok, err := codes.CountryID(asStr(l.row, "country")); err != nil {
		return err
	} else if ok {
		countryID = id
	}

	working := l.row.Clone()
	working["modified"] = time.Now().Unix()
	working["country_id"] = countryID
	update := CleanLocation(working)

	if err := db.Table("ss_location").Where("sid = ?", asInt(update, "sid")).Updates(map[string]any(update)).Error; err != nil {
		return err
	}

	audit := update.Clone()
	audit["edit_uid"] = actor

	return db.Table("ss_location_AUDIT").Create(map[string]any(audit)).Error
}

// mergeLocationOffset attaches the current UTC offset in seconds for the
// stored timezone under a derived key. It is recomputed on every load and
// never persisted.
func mergeLocationOffset(row Row) Row {
	tz := core.TimezoneNames[asInt(row, "time_zone")]
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return row
	}
	_, offset := time.Now().In(loc).Zone()
	row["locationOffset"] = int64(offset)
	return row
}

func locationQuery(db *gorm.DB) *gorm.DB {
	return db.Table("ss_location").
		Select("ss_location.*, uc_zones.zone_code AS state, uc_countries.country_iso_code_2 AS country").
		Joins("INNER JOIN uc_countries ON ss_location.country_id = uc_countries.country_id").
		Joins("LEFT JOIN uc_zones ON ss_location.zone = uc_zones.zone_id")
}

// LocationBySid returns the single location with this sid.
func LocationBySid(db *gorm.DB, sid int64) (*Location, error) {
	var row Row
	err := locationQuery(db).Where("sid = ?", sid).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("Could not find location")
	}
	if err != nil {
		return nil, err
	}
	return newLocation(row), nil
}

// LocationByAccount returns the location whose service row has the highest
// status ordinal among rows sharing the account.
func LocationByAccount(db *gorm.DB, account string) (*Location, error) {
	var row Row
	err := locationQuery(db).
		Joins("INNER JOIN ss_service ON ss_location.sid = ss_service.sid").
		Where("account = ?", account).
		Order("ss_service.s_status DESC").Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("Could not find location")
	}
	if err != nil {
		return nil, err
	}
	return newLocation(row), nil
}

// LocationsByUid returns every location owned by uid. No match is an
// empty list, not an error.
func LocationsByUid(db *gorm.DB, uid int64) ([]*Location, error) {
	var rows []Row
	err := locationQuery(db).Where("uid = ?", uid).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(rows, newLocation), nil
}

// Sid exposes the primary key for pairing lookups across entities.
func (l *Location) Sid() int64 {
	return asInt(l.row, "sid")
}
