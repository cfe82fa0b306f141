package core

// Service status ordinals, ordered by severity. Higher wins when several
// rows share an account.
const (
	ServiceCanceled     = -10
	ServiceNotActivated = 0
	ServiceSuspended    = 5
	ServiceCameraOnly   = 7
	ServicePracticeMode = 10
	ServiceActivated    = 20
)

const OneMonthInSeconds = 2628000

// Plan skus the service knows about. Country variants carry an underscore
// suffix (e.g. SSEDCM1_GB) and are stripped before classification.
const (
	PlanBlank           = "SSBCV1"
	PlanCameraOnly      = "SSEDCM1"
	PlanCameraUnlimited = "SSEDCMU"
	PlanBasicMonitoring = "SSEDBM1"
	PlanBasicWithCamera = "SSEDBC1"
	PlanInteractive     = "SSEDSM2"
	PlanCameraDefault   = "SSVM1"
)

const (
	CountryIDUS = 840
	CountryIDGB = 826
)

// DispatcherFromCountryID selects the dispatch provider for a subscription
// at creation time.
var DispatcherFromCountryID = map[int64]string{
	CountryIDUS: "cops",
	CountryIDGB: "securitas",
}

// TimezoneNames maps the stored time_zone ordinal to an IANA zone name.
var TimezoneNames = map[int64]string{
	0: "America/New_York",
	1: "America/Chicago",
	2: "America/Denver",
	3: "America/Los_Angeles",
	4: "America/Puerto_Rico",
	5: "America/Phoenix",
	6: "Pacific/Honolulu",
	7: "America/Anchorage",
	8: "Europe/London",
}

// TimezoneIDs is the reverse of TimezoneNames.
var TimezoneIDs = map[string]int64{
	"America/New_York":    0,
	"America/Chicago":     1,
	"America/Denver":      2,
	"America/Los_Angeles": 3,
	"America/Puerto_Rico": 4,
	"America/Phoenix":     5,
	"Pacific/Honolulu":    6,
	"America/Anchorage":   7,
	"Europe/London":       8,
}
