package model

// The CIM payment profile tables have _TEST variants selected by the
// configured transaction mode, so non-production traffic never joins
// against live payment profiles.

var paymentProfilesTable = "uc_cim_payment_profiles"

// SetTransactionMode switches the payment profile join target. Call once
// at startup with the configured mode ("test" or "production").
func SetTransactionMode(mode string) {
	if mode == "test" {
		paymentProfilesTable = "uc_cim_payment_profiles_TEST"
	} else {
		paymentProfilesTable = "uc_cim_payment_profiles"
	}
}
