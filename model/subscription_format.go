package model

// Formatters translate between the client-facing camelCase shape and the
// flat storage row, one direction per function. They are pure; nothing
// here touches the database.

// CreditCardDTO is the payment profile reference nested on a subscription.
type CreditCardDTO struct {
	Ppid       int64  `json:"ppid"`
	BackupPpid *int64 `json:"backupPpid"`
	Uid        int64  `json:"uid"`
	Type       string `json:"type"`
	LastFour   string `json:"lastFour"`
}

type CreditCardInput struct {
	Ppid       *int64 `json:"ppid"`
	BackupPpid *int64 `json:"backupPpid"`
	Uid        *int64 `json:"uid"`
}

// SubscriptionDTO is the full client shape of a service row.
type SubscriptionDTO struct {
	Uid            int64         `json:"uid"`
	Sid            int64         `json:"sid"`
	OrderId        int64         `json:"orderId"`
	OrderProductId int64         `json:"orderProductId"`
	SStatus        int64         `json:"sStatus"`
	PlanSku        string        `json:"planSku"`
	PlanName       string        `json:"planName"`
	Currency       string        `json:"currency"`
	Country        string        `json:"country"`
	Data           string        `json:"data"`
	Created        int64         `json:"created"`
	Activated      int64         `json:"activated"`
	Expires        int64         `json:"expires"`
	Canceled       int64         `json:"canceled"`
	CancelReason   string        `json:"cancelReason"`
	Time           int64         `json:"time"`
	ExtraTime      int64         `json:"extraTime"`
	Price          float64       `json:"price"`
	ExtraCharge    float64       `json:"extraCharge"`
	Renew          int64         `json:"renew"`
	LastSignal     int64         `json:"lastSignal"`
	ActivationCode string        `json:"activationCode"`
	SystemVersion  int64         `json:"systemVersion"`
	Dispatcher     string        `json:"dispatcher"`
	CreditCard     CreditCardDTO `json:"creditCard"`
	UpgradeStatus  int64         `json:"upgradeStatus"`
	Features       FeaturesDTO   `json:"features"`
}

// SubscriptionInput is the partial client shape accepted on updates.
// A nil field means "do not touch the column".
type SubscriptionInput struct {
	Uid            *int64           `json:"uid"`
	Sid            *int64           `json:"sid"`
	SStatus        *int64           `json:"sStatus"`
	OrderId        *int64           `json:"orderId"`
	OrderProductId *int64           `json:"orderProductId"`
	PlanSku        *string          `json:"planSku"`
	PlanName       *string          `json:"planName"`
	Currency       *string          `json:"currency"`
	Country        *string          `json:"country" binding:"omitempty,alphanum,len=2"`
	Expires        *int64           `json:"expires"`
	Time           *int64           `json:"time"`
	ExtraTime      *int64           `json:"extraTime"`
	Price          *float64         `json:"price"`
	ExtraCharge    *float64         `json:"extraCharge"`
	Renew          *int64           `json:"renew"`
	ActivationCode *string          `json:"activationCode"`
	SystemVersion  *int64           `json:"systemVersion"`
	Dispatcher     *string          `json:"dispatcher"`
	CreditCard     *CreditCardInput `json:"creditCard"`
	Features       *FeaturesInput   `json:"features"`
	UpgradeStatus  *int64           `json:"upgradeStatus"`
}

// SubscriptionCreateInput is the body of a plan-selection create.
type SubscriptionCreateInput struct {
	Uid            *int64           `json:"uid"`
	OrderId        *int64           `json:"orderId"`
	OrderProductId *int64           `json:"orderProductId"`
	ActivationCode *string          `json:"activationCode"`
	CreditCard     *CreditCardInput `json:"creditCard"`
}

// subscriptionColumns is the persisted-column allowlist for ss_service.
var subscriptionColumns = []string{
	"sid",
	"uid",
	"order_product_id",
	"plan_sku",
	"name",
	"created",
	"activated",
	"expires",
	"canceled",
	"time",
	"extra_time",
	"renew",
	"price",
	"extra_charge",
	"s_status",
	"cim_ppid",
	"cim_uid",
	"activation_code",
	"data",
	"last_signal",
	"cancel_reason",
	"system_version",
	"dcid",
	"dispatch_name",
	"order_id",
	"backup_cim_ppid",
	"currency_id",
	"country_id",
}

// SubscriptionFromClient maps the fields present in the input onto storage
// columns. Note that time, extraTime and price are accepted by validation
// but have no column mapping here, so client updates to them are dropped.
func SubscriptionFromClient(in SubscriptionInput) Row {
	updates := Row{}
	set(updates, "uid", in.Uid)
	set(updates, "sid", in.Sid)
	set(updates, "s_status", in.SStatus)
	set(updates, "order_id", in.OrderId)
	set(updates, "order_product_id", in.OrderProductId)
	set(updates, "plan_sku", in.PlanSku)
	set(updates, "name", in.PlanName)
	set(updates, "expires", in.Expires)
	set(updates, "renew", in.Renew)
	set(updates, "extra_charge", in.ExtraCharge)
	set(updates, "currency", in.Currency)
	set(updates, "country", in.Country)
	set(updates, "activation_code", in.ActivationCode)
	set(updates, "system_version", in.SystemVersion)
	set(updates, "dispatch_name", in.Dispatcher)
	if in.CreditCard != nil {
		set(updates, "backup_cim_ppid", in.CreditCard.BackupPpid)
		set(updates, "cim_ppid", in.CreditCard.Ppid)
		set(updates, "cim_uid", in.CreditCard.Uid)
	}
	return updates
}

// SubscriptionToClient builds the full client shape from a loaded row and
// its already-decoded feature data.
func SubscriptionToClient(row Row, data FeatureData) SubscriptionDTO {
	dto := SubscriptionDTO{
		Uid:            asInt(row, "uid"),
		Sid:            asInt(row, "sid"),
		OrderId:        asInt(row, "order_id"),
		OrderProductId: asInt(row, "order_product_id"),
		SStatus:        asInt(row, "s_status"),
		PlanSku:        asStr(row, "plan_sku"),
		PlanName:       asStr(row, "name"),
		Currency:       asStr(row, "currency"),
		Country:        asStr(row, "country"),
		Data:           asStr(row, "data"),
		Created:        asInt(row, "created"),
		Activated:      asInt(row, "activated"),
		Expires:        asInt(row, "expires"),
		Canceled:       asInt(row, "canceled"),
		CancelReason:   asStr(row, "cancel_reason"),
		Time:           asInt(row, "time"),
		ExtraTime:      asInt(row, "extra_time"),
		Price:          asFloat(row, "price"),
		ExtraCharge:    asFloat(row, "extra_charge"),
		Renew:          asInt(row, "renew"),
		LastSignal:     asInt(row, "last_signal"),
		ActivationCode: asStr(row, "activation_code"),
		SystemVersion:  asInt(row, "system_version"),
		Dispatcher:     asStr(row, "dispatch_name"),
		CreditCard: CreditCardDTO{
			Ppid:       asInt(row, "cim_ppid"),
			BackupPpid: nullableInt(row, "backup_cim_ppid"),
			Uid:        asInt(row, "cim_uid"),
			Type:       asStr(row, "cc_type"),
			LastFour:   asStr(row, "last_four"),
		},
		Features: FeaturesFromData(data),
	}
	if data.UpgradeStatus != nil {
		dto.UpgradeStatus = *data.UpgradeStatus
	}
	return dto
}

// CleanSubscription drops everything ss_service does not persist.
func CleanSubscription(row Row) Row {
	return pick(row, subscriptionColumns)
}
