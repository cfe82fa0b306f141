package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFromClient(t *testing.T) {
	t.Run("primary contact names split on whitespace, extra tokens dropped", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{
			PrimaryContacts: []ContactInput{
				{Name: strPtr("Jane Jameson Smith"), Phone: strPtr("8675309")},
				{Name: strPtr("John Doe")},
			},
		})

		assert.Equal(t, "Jane", updates["first_name"])
		assert.Equal(t, "Jameson", updates["last_name"])
		assert.Equal(t, "8675309", updates["phone"])
		assert.Equal(t, "John", updates["first_name2"])
		assert.Equal(t, "Doe", updates["last_name2"])
		_, ok := updates["phone2"]
		assert.False(t, ok)
	})

	t.Run("single token name leaves last name untouched", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{
			PrimaryContacts: []ContactInput{{Name: strPtr("Cher")}},
		})

		assert.Equal(t, "Cher", updates["first_name"])
		_, ok := updates["last_name"]
		assert.False(t, ok)
	})

	t.Run("state has no column mapping", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{State: strPtr("MA")})
		assert.Empty(t, updates)
	})

	t.Run("secondary contacts map positionally", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{
			SecondaryContacts: []ContactInput{
				{Name: strPtr("First Contact"), Phone: strPtr("111")},
				{Name: strPtr("Second Contact")},
			},
		})

		assert.Equal(t, "First Contact", updates["contact_name1"])
		assert.Equal(t, "111", updates["contact_phone1"])
		assert.Equal(t, "Second Contact", updates["contact_name2"])
		_, ok := updates["contact_name3"]
		assert.False(t, ok)
	})

	t.Run("videoVerification is tri-state", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{})
		_, ok := updates["enable_cops_video"]
		assert.False(t, ok)

		updates = LocationFromClient(LocationInput{VideoVerification: boolPtr(false)})
		assert.Equal(t, int64(0), updates["enable_cops_video"])

		updates = LocationFromClient(LocationInput{VideoVerification: boolPtr(true)})
		assert.Equal(t, int64(1), updates["enable_cops_video"])
	})

	t.Run("dispatch numbers and securitas info map onto flat columns", func(t *testing.T) {
		updates := LocationFromClient(LocationInput{
			DispatchNumbers: &DispatchNumbersInput{Police1: strPtr("911"), Guard2: strPtr("555")},
			SecuritasInfo:   &SecuritasInfoInput{SiteNo: strPtr("S-1"), CsNo: strPtr("CS-9")},
		})

		assert.Equal(t, "911", updates["pd_phone1"])
		assert.Equal(t, "555", updates["guard_phone2"])
		assert.Equal(t, "S-1", updates["site_no"])
		assert.Equal(t, "CS-9", updates["cs_no"])
	})
}

func TestLocationToClient(t *testing.T) {
	row := Row{
		"sid":            int64(1001),
		"uid":            int64(77),
		"account":        "0012345",
		"first_name":     "Jane",
		"last_name":      "Jameson",
		"phone":          "8675309",
		"first_name2":    "John",
		"last_name2":     "",
		"contact_name1":  "Backup One",
		"contact_phone1": "111",
		"state":          []byte("MA"),
		"country":        []byte("US"),
		"postal_code":    "02110",
		"locationOffset": int64(-14400),
	}

	dto := LocationToClient(row)

	assert.Equal(t, "Jane Jameson", dto.PrimaryContacts[0].Name)
	assert.Equal(t, "John", dto.PrimaryContacts[1].Name)
	assert.Equal(t, "Backup One", dto.SecondaryContacts[0].Name)
	assert.Equal(t, "MA", dto.State)
	assert.Equal(t, "02110", dto.Zip)
	assert.Equal(t, int64(-14400), dto.LocationOffset)
	assert.Equal(t, "https://simplisafe.com/account2/77/alarm-certificate/1001", dto.CertificateUri)
}

func TestCleanLocation(t *testing.T) {
	row := Row{
		"sid":            int64(1001),
		"account":        "0012345",
		"state":          "MA",
		"country":        "US",
		"locationOffset": int64(-14400),
	}

	clean := CleanLocation(row)

	assert.Equal(t, Row{"sid": int64(1001), "account": "0012345"}, clean)
}
