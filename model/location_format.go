package model

import (
	"fmt"
	"strings"
)

type ContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ContactInput carries one named contact. Primary contact names must hold
// at least a first and last name; the contactname rule is registered with
// the binding validator in web/common.
type ContactInput struct {
	Name  *string `json:"name" binding:"omitempty,contactname"`
	Phone *string `json:"phone"`
}

type DispatchNumbersDTO struct {
	Police1 string `json:"police1"`
	Police2 string `json:"police2"`
	Fire1   string `json:"fire1"`
	Fire2   string `json:"fire2"`
	Guard1  string `json:"guard1"`
	Guard2  string `json:"guard2"`
}

type DispatchNumbersInput struct {
	Police1 *string `json:"police1"`
	Police2 *string `json:"police2"`
	Fire1   *string `json:"fire1"`
	Fire2   *string `json:"fire2"`
	Guard1  *string `json:"guard1"`
	Guard2  *string `json:"guard2"`
}

type SecuritasInfoDTO struct {
	SiteNo     string `json:"siteNo"`
	SitestatId string `json:"sitestatId"`
	CsNo       string `json:"csNo"`
}

type SecuritasInfoInput struct {
	SiteNo     *string `json:"siteNo"`
	SitestatId *string `json:"sitestatId"`
	CsNo       *string `json:"csNo"`
}

// LocationDTO is the full client shape of a location row.
type LocationDTO struct {
	Sid               int64              `json:"sid"`
	Uid               int64              `json:"uid"`
	LStatus           int64              `json:"lStatus"`
	Account           string             `json:"account"`
	Street1           string             `json:"street1"`
	Street2           string             `json:"street2"`
	CrossStreet       string             `json:"crossStreet"`
	Name              string             `json:"name"`
	City              string             `json:"city"`
	State             string             `json:"state"`
	Zip               string             `json:"zip"`
	County            string             `json:"county"`
	Country           string             `json:"country"`
	Notes             string             `json:"notes"`
	ResidenceType     int64              `json:"residenceType"`
	NumAdults         int64              `json:"numAdults"`
	NumChildren       int64              `json:"numChildren"`
	SafeWord          string             `json:"safeWord"`
	Signature         string             `json:"signature"`
	TimeZone          int64              `json:"timeZone"`
	LocationOffset    int64              `json:"locationOffset"`
	PrimaryContacts   []ContactDTO       `json:"primaryContacts"`
	SecondaryContacts []ContactDTO       `json:"secondaryContacts"`
	VideoVerification bool               `json:"videoVerification"`
	CertificateUri    string             `json:"certificateUri"`
	LicenseNumber     string             `json:"licenseNumber"`
	LicenseExpiration int64              `json:"licenseExpiration"`
	TemplateId        int64              `json:"templateId"`
	Names             string             `json:"names"`
	Modified          int64              `json:"modified"`
	DispatchNumbers   DispatchNumbersDTO `json:"dispatchNumbers"`
	SecuritasInfo     SecuritasInfoDTO   `json:"securitasInfo"`
}

// LocationInput is the partial client shape accepted on updates.
type LocationInput struct {
	Sid               *int64                `json:"sid"`
	Uid               *int64                `json:"uid"`
	LStatus           *int64                `json:"lStatus"`
	Account           *string               `json:"account"`
	Street1           *string               `json:"street1"`
	Street2           *string               `json:"street2"`
	CrossStreet       *string               `json:"crossStreet"`
	Name              *string               `json:"name"`
	City              *string               `json:"city"`
	State             *string               `json:"state"`
	Zip               *string               `json:"zip"`
	County            *string               `json:"county"`
	Country           *string               `json:"country" binding:"omitempty,alphanum,len=2"`
	Notes             *string               `json:"notes"`
	ResidenceType     *int64                `json:"residenceType"`
	NumAdults         *int64                `json:"numAdults"`
	NumChildren       *int64                `json:"numChildren"`
	SafeWord          *string               `json:"safeWord"`
	Signature         *string               `json:"signature"`
	TimeZone          *int64                `json:"timeZone"`
	PrimaryContacts   []ContactInput        `json:"primaryContacts" binding:"omitempty,max=2,dive"`
	SecondaryContacts []ContactInput        `json:"secondaryContacts" binding:"omitempty,max=5,dive"`
	VideoVerification *bool                 `json:"videoVerification"`
	LicenseNumber     *string               `json:"licenseNumber"`
	LicenseExpiration *int64                `json:"licenseExpiration"`
	TemplateId        *int64                `json:"templateId"`
	Names             *string               `json:"names"`
	DispatchNumbers   *DispatchNumbersInput `json:"dispatchNumbers"`
	SecuritasInfo     *SecuritasInfoInput   `json:"securitasInfo"`
}

// locationColumns is the persisted-column allowlist for ss_location.
var locationColumns = []string{
	"modified",
	"sid",
	"uid",
	"l_status",
	"account",
	"abort",
	"signature",
	"first_name",
	"last_name",
	"phone",
	"phone2",
	"street1",
	"street2",
	"city",
	"zone",
	"postal_code",
	"municipality",
	"cross_street",
	"dispatch_notes",
	"contact_name1",
	"contact_phone1",
	"contact_name2",
	"contact_phone2",
	"contact_name3",
	"contact_phone3",
	"contact_name4",
	"contact_phone4",
	"contact_name5",
	"contact_phone5",
	"names",
	"time_zone",
	"residence_type",
	"num_adults",
	"num_children",
	"pd_phone1",
	"pd_phone2",
	"fd_phone1",
	"fd_phone2",
	"license_number",
	"license_expiration",
	"template_id",
	"guard_phone1",
	"guard_phone2",
	"mfa",
	"enable_cops_video",
	"first_name2",
	"last_name2",
	"location_name",
	"enable_smashsafe",
	"site_no",
	"enable_securitas_video",
	"sitestat_id",
	"cs_no",
	"country_id",
}

// secondary contact columns are positional: slot N of the input array maps
// to contact_nameN/contact_phoneN.
var secondaryContactColumns = [5][2]string{
	{"contact_name1", "contact_phone1"},
	{"contact_name2", "contact_phone2"},
	{"contact_name3", "contact_phone3"},
	{"contact_name4", "contact_phone4"},
	{"contact_name5", "contact_phone5"},
}

// LocationFromClient maps the fields present in the input onto storage
// columns. State is accepted by validation but has no column mapping (the
// stored zone id only changes through other channels), so it is dropped.
func LocationFromClient(in LocationInput) Row {
	updates := Row{}
	set(updates, "sid", in.Sid)
	set(updates, "uid", in.Uid)
	set(updates, "l_status", in.LStatus)
	set(updates, "account", in.Account)
	set(updates, "street1", in.Street1)
	set(updates, "street2", in.Street2)
	set(updates, "cross_street", in.CrossStreet)
	set(updates, "location_name", in.Name)
	set(updates, "city", in.City)
	set(updates, "postal_code", in.Zip)
	set(updates, "municipality", in.County)
	set(updates, "country", in.Country)
	set(updates, "dispatch_notes", in.Notes)
	set(updates, "residence_type", in.ResidenceType)
	set(updates, "num_adults", in.NumAdults)
	set(updates, "num_children", in.NumChildren)
	set(updates, "abort", in.SafeWord)
	set(updates, "signature", in.Signature)
	set(updates, "time_zone", in.TimeZone)
	set(updates, "names", in.Names)
	set(updates, "license_number", in.LicenseNumber)
	set(updates, "license_expiration", in.LicenseExpiration)
	set(updates, "template_id", in.TemplateId)

	for i, contact := range in.SecondaryContacts {
		if i >= len(secondaryContactColumns) {
			break
		}
		set(updates, secondaryContactColumns[i][0], contact.Name)
		set(updates, secondaryContactColumns[i][1], contact.Phone)
	}

	if in.DispatchNumbers != nil {
		set(updates, "pd_phone1", in.DispatchNumbers.Police1)
		set(updates, "pd_phone2", in.DispatchNumbers.Police2)
		set(updates, "fd_phone1", in.DispatchNumbers.Fire1)
		set(updates, "fd_phone2", in.DispatchNumbers.Fire2)
		set(updates, "guard_phone1", in.DispatchNumbers.Guard1)
		set(updates, "guard_phone2", in.DispatchNumbers.Guard2)
	}

	if in.SecuritasInfo != nil {
		set(updates, "site_no", in.SecuritasInfo.SiteNo)
		set(updates, "sitestat_id", in.SecuritasInfo.SitestatId)
		set(updates, "cs_no", in.SecuritasInfo.CsNo)
	}

	// Primary contact names split into first/last on whitespace. Only the
	// first two tokens survive: "Jane Jameson Smith" stores last name
	// "Jameson", not "Jameson Smith".
	if len(in.PrimaryContacts) > 0 {
		setPrimaryContact(updates, in.PrimaryContacts[0], "first_name", "last_name", "phone")
	}
	if len(in.PrimaryContacts) > 1 {
		setPrimaryContact(updates, in.PrimaryContacts[1], "first_name2", "last_name2", "phone2")
	}

	// Tri-state: absent means leave the column alone, false means 0.
	if in.VideoVerification != nil {
		updates["enable_cops_video"] = boolToInt(*in.VideoVerification)
	}

	return updates
}

func setPrimaryContact(updates Row, contact ContactInput, firstCol, lastCol, phoneCol string) {
	if contact.Name != nil && *contact.Name != "" {
		tokens := strings.Fields(*contact.Name)
		updates[firstCol] = tokens[0]
		if len(tokens) > 1 {
			updates[lastCol] = tokens[1]
		}
	}
	if contact.Phone != nil && *contact.Phone != "" {
		updates[phoneCol] = *contact.Phone
	}
}

// LocationToClient builds the full client shape from a loaded row.
// locationOffset is a derived key merged in at load time, never persisted.
func LocationToClient(row Row) LocationDTO {
	return LocationDTO{
		Sid:            asInt(row, "sid"),
		Uid:            asInt(row, "uid"),
		LStatus:        asInt(row, "l_status"),
		Account:        asStr(row, "account"),
		Street1:        asStr(row, "street1"),
		Street2:        asStr(row, "street2"),
		CrossStreet:    asStr(row, "cross_street"),
		Name:           asStr(row, "location_name"),
		City:           asStr(row, "city"),
		State:          asStr(row, "state"),
		Zip:            asStr(row, "postal_code"),
		County:         asStr(row, "municipality"),
		Country:        asStr(row, "country"),
		Notes:          asStr(row, "dispatch_notes"),
		ResidenceType:  asInt(row, "residence_type"),
		NumAdults:      asInt(row, "num_adults"),
		NumChildren:    asInt(row, "num_children"),
		SafeWord:       asStr(row, "abort"),
		Signature:      asStr(row, "signature"),
		TimeZone:       asInt(row, "time_zone"),
		LocationOffset: asInt(row, "locationOffset"),
		PrimaryContacts: []ContactDTO{
			{Name: joinName(asStr(row, "first_name"), asStr(row, "last_name")), Phone: asStr(row, "phone")},
			{Name: joinName(asStr(row, "first_name2"), asStr(row, "last_name2")), Phone: asStr(row, "phone2")},
		},
		SecondaryContacts: []ContactDTO{
			{Name: asStr(row, "contact_name1"), Phone: asStr(row, "contact_phone1")},
			{Name: asStr(row, "contact_name2"), Phone: asStr(row, "contact_phone2")},
			{Name: asStr(row, "contact_name3"), Phone: asStr(row, "contact_phone3")},
			{Name: asStr(row, "contact_name4"), Phone: asStr(row, "contact_phone4")},
			{Name: asStr(row, "contact_name5"), Phone: asStr(row, "contact_phone5")},
		},
		VideoVerification: asBool(row, "enable_cops_video"),
		CertificateUri:    fmt.Sprintf("https://simplisafe.com/account2/%d/alarm-certificate/%d", asInt(row, "uid"), asInt(row, "sid")),
		LicenseNumber:     asStr(row, "license_number"),
		LicenseExpiration: asInt(row, "license_expiration"),
		TemplateId:        asInt(row, "template_id"),
		Names:             asStr(row, "names"),
		Modified:          asInt(row, "modified"),
		DispatchNumbers: DispatchNumbersDTO{
			Police1: asStr(row, "pd_phone1"),
			Police2: asStr(row, "pd_phone2"),
			Fire1:   asStr(row, "fd_phone1"),
			Fire2:   asStr(row, "fd_phone2"),
			Guard1:  asStr(row, "guard_phone1"),
			Guard2:  asStr(row, "guard_phone2"),
		},
		SecuritasInfo: SecuritasInfoDTO{
			SiteNo:     asStr(row, "site_no"),
			SitestatId: asStr(row, "sitestat_id"),
			CsNo:       asStr(row, "cs_no"),
		},
	}
}

func joinName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}

// CleanLocation drops everything ss_location does not persist.
func CleanLocation(row Row) Row {
	return pick(row, locationColumns)
}
