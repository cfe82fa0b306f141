package model

import (
	"errors"

	"gorm.io/gorm"
)

// CodeResolver resolves human-facing country/currency codes to the internal
// numeric ids stored alongside them. A miss is not an error; callers leave
// the id column untouched when ok is false.
type CodeResolver interface {
	CountryID(code string) (id int64, ok bool, err error)
	CurrencyID(code string) (id int64, ok bool, err error)
}

type dbCodeResolver struct {
	db *gorm.DB
}

// NewCodeResolver returns the database-backed resolver used in production.
func NewCodeResolver(db *gorm.DB) CodeResolver {
	return &dbCodeResolver{db: db}
}

func (r *dbCodeResolver) CountryID(code string) (int64, bool, error) {
	var result struct {
		CountryID int64
	}
	err := r.db.Table("uc_countries").Select("country_id").
		Where("country_iso_code_2 = ?", code).Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return result.CountryID, true, nil
}

func (r *dbCodeResolver) CurrencyID(code string) (int64, bool, error) {
	var result struct {
		ID int64
	}
	err := r.db.Table("currencies").Select("id").
		Where("code = ?", code).Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return result.ID, true, nil
}
