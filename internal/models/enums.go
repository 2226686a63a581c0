package models

// Company structures offered by the company editor.
var Structures = []string{
	"LLC",
	"S-Corp",
	"C-Corp",
	"Small Business",
	"Sole Proprietorship",
	"Partnership",
	"Holding Company",
	"Non-Profit",
	"Personal",
	"Other",
}

// BrandColors is the company color palette; the first entry is the default.
var BrandColors = []string{
	"#4f46e5", // indigo
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ef4444", // red
	"#3b82f6", // blue
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#64748b", // slate
	"#000000",
}

const (
	TwoFactorAuthenticator = "Authenticator"
	TwoFactorSMS           = "SMS"
	TwoFactorNone          = "None"

	PricingFree = "free"
	PricingPaid = "paid"

	CycleMonthly = "Monthly"
	CycleYearly  = "Yearly"

	RenewAuto   = "Auto"
	RenewManual = "Manual"

	AccountActive   = "Active"
	AccountInactive = "Inactive"
	AccountTrial    = "Trial"

	SubscriptionActive    = "Active"
	SubscriptionCancelled = "Cancelled"
	SubscriptionPending   = "Pending"

	CardActive  = "Active"
	CardFrozen  = "Frozen"
	CardExpired = "Expired"

	LoanActive  = "Active"
	LoanPaidOff = "Paid Off"
	LoanDefault = "Default"

	DefaultCurrency = "USD"
)

// Card networks and types.
var (
	CardNetworks = []string{"Visa", "Mastercard", "Amex", "Discover", "Other"}
	CardTypes    = []string{"Credit", "Debit"}
)

// InstitutionAccountTypes are the sub-account types of a bank.
var InstitutionAccountTypes = []string{"Checking", "Savings", "Investing", "CD", "Credit Card", "Debit Card", "Other"}

// DocumentTypes are the document categories.
var DocumentTypes = []string{"Formation", "Legal", "Contract", "Finance", "Other"}

// DefaultStructure and DefaultPricing stand in for empty values.
const (
	DefaultStructure = "LLC"
	DefaultPricing   = PricingPaid
)

// legacyAuthApp is the pre-rename spelling of TwoFactorAuthenticator.
const legacyAuthApp = "Auth App"

// NamesTwoFactorMethod reports whether v is a 2FA method, current or legacy,
// rather than free text.
func NamesTwoFactorMethod(v string) bool {
	switch v {
	case legacyAuthApp, TwoFactorAuthenticator, TwoFactorSMS, TwoFactorNone:
		return true
	}
	return false
}

// CanonicalTwoFactor maps raw onto Authenticator, SMS or None. Free text
// such as "YubiKey" is a recovery hint: it becomes None and moves into
// recovery when recovery is empty.
func CanonicalTwoFactor(raw, recovery string) (string, string) {
	var method string
	switch raw {
	case legacyAuthApp, TwoFactorAuthenticator:
		method = TwoFactorAuthenticator
	case TwoFactorSMS:
		method = TwoFactorSMS
	default:
		method = TwoFactorNone
	}
	if raw != "" && !NamesTwoFactorMethod(raw) && recovery == "" {
		recovery = raw
	}
	return method, recovery
}
