package core

import "strings"

var cameraPlans = []string{PlanBlank, PlanCameraOnly, PlanCameraUnlimited}

// StripCountry removes the country variant suffix from a plan sku.
// "SSEDCM1_GB" -> "SSEDCM1".
func StripCountry(sku string) string {
	return strings.SplitN(sku, "_", 2)[0]
}

// IsCameraPlan reports whether the sku denotes a camera-only service tier.
func IsCameraPlan(sku string) bool {
	base := StripCountry(sku)
	for _, p := range cameraPlans {
		if p == base {
			return true
		}
	}
	return false
}

// IsDowngradeToCamera reports whether applying newSku to a subscription
// currently on currentSku would downgrade a monitored plan to a camera plan.
// Camera plans may only be applied to subscriptions already on a camera plan.
func IsDowngradeToCamera(currentSku, newSku string) bool {
	return IsCameraPlan(newSku) && !IsCameraPlan(currentSku)
}
