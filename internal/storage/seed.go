package storage

import (
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

const day = 24 * time.Hour

// Seed returns the demonstration dataset written on first run and after a
// reset. Company timestamps are relative to now.
func Seed(now time.Time) models.Snapshot {
	ago := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	return models.Snapshot{
		Companies: []models.Company{
			{ID: "1", Name: "Cifr", Structure: "C-Corp", Description: "Advanced data encryption and AI analytics.", Color: "#4f46e5", LastModified: ago(day), LastViewed: ago(time.Hour)},
			{ID: "2", Name: "EcoStream", Structure: "LLC", Description: "Sustainable water filtration solutions.", Color: "#10b981", LastModified: ago(3 * day), LastViewed: ago(2 * day)},
			{ID: "3", Name: "Vortex Agency", Structure: "S-Corp", Description: "Web3 and tech growth agency.", Color: "#f59e0b", LastModified: ago(10 * day), LastViewed: ago(5 * day)},
		},
		Accounts: []models.Account{
			{
				ID: "a1", CompanyID: "1", Platform: "AWS", Website: "https://aws.amazon.com", Email: "billing@cifr.io",
				TwoFactorAuth: models.TwoFactorAuthenticator, RecoveryMethod: "Backup Codes", Password: "••••••••",
				PricingModel: models.PricingPaid, Notes: []string{"Main production infra", "Linked to credit card 4242"},
				SubscriptionCost: 1200, SubscriptionInterval: models.CycleMonthly,
				PaymentMethod: "Amex ••1002", NextBillingDate: "2024-11-30", Renew: models.RenewAuto, Status: models.AccountActive,
			},
			{
				ID: "a2", CompanyID: "1", Platform: "Slack", Website: "https://slack.com", Email: "owner@cifr.io",
				TwoFactorAuth: models.TwoFactorSMS, RecoveryMethod: "555-0123", Password: "••••••••",
				PricingModel: models.PricingPaid, Notes: []string{"Workspace owner"},
				SubscriptionCost: 15, SubscriptionInterval: models.CycleMonthly,
				PaymentMethod: "Visa ••4242", NextBillingDate: "2024-11-27", Renew: models.RenewAuto, Status: models.AccountActive,
			},
			{
				ID: "a3", CompanyID: "2", Platform: "Shopify", Website: "https://shopify.com", Email: "sales@ecostream.com",
				TwoFactorAuth: models.TwoFactorAuthenticator, RecoveryMethod: "YubiKey", Password: "••••••••",
				PricingModel: models.PricingPaid, Notes: []string{"Main storefront"},
				SubscriptionCost: 29, SubscriptionInterval: models.CycleMonthly,
				PaymentMethod: "PayPal", NextBillingDate: "2024-12-15", Renew: models.RenewAuto, Status: models.AccountActive,
			},
			{
				ID: "a4", CompanyID: "3", Platform: "Stripe", Website: "https://stripe.com", Email: "agency@vortex.co",
				TwoFactorAuth: models.TwoFactorAuthenticator, RecoveryMethod: "Backup Codes",
				PricingModel: models.PricingFree, Notes: []string{"Client payments"},
				SubscriptionInterval: models.CycleMonthly,
				PaymentMethod: "Linked Bank", Renew: models.RenewManual, Status: models.AccountActive,
			},
		},
		Subscriptions: []models.Subscription{
			{
				ID: "s1", CompanyID: "1", Name: "Github Enterprise", Cost: 49, Currency: models.DefaultCurrency,
				BillingCycle: models.CycleMonthly, PaymentMethod: "Amex ••1002", NextRenewal: "2024-11-20",
				Renew: models.RenewAuto, Status: models.SubscriptionActive,
				Email: "tech@cifr.io", EmailPurpose: "Receives all pull request notifications and team invites.",
				SubServices: []models.SubService{
					{ID: "sub1", Name: "Copilot Business", Cost: 19, Status: models.SubscriptionActive},
					{ID: "sub2", Name: "LFS Data Storage", Cost: 5, Status: models.SubscriptionActive},
				},
			},
			{
				ID: "s2", CompanyID: "1", Name: "Zoom", Cost: 15.99, Currency: models.DefaultCurrency,
				BillingCycle: models.CycleMonthly, PaymentMethod: "Visa ••4242", NextRenewal: "2024-11-15",
				Renew: models.RenewAuto, Status: models.SubscriptionActive,
				Email: "owner@cifr.io", EmailPurpose: "Primary login for CEO host access.",
			},
			{
				ID: "s3", CompanyID: "2", Name: "Klaviyo", Cost: 120, Currency: models.DefaultCurrency,
				BillingCycle: models.CycleMonthly, PaymentMethod: "PayPal", NextRenewal: "2024-12-01",
				Renew: models.RenewAuto, Status: models.SubscriptionActive,
				Email: "marketing@ecostream.com", EmailPurpose: "Used for bulk customer newsletter campaigns.",
			},
		},
		FinancialCards: []models.FinancialCard{
			{ID: "f1", CompanyID: "1", Name: "Amex Business Platinum", CardHolder: "CIFR INC", Last4: "1002", Expiry: "12/28", Network: "Amex", Type: "Credit", Status: models.CardActive, Limit: 50000},
			{ID: "f2", CompanyID: "1", Name: "Chase Ink Unlimited", CardHolder: "CIFR INC", Last4: "4242", Expiry: "09/27", Network: "Visa", Type: "Credit", Status: models.CardActive, Limit: 25000},
			{ID: "f3", CompanyID: "2", Name: "Brex", CardHolder: "ECOSTREAM LLC", Last4: "9988", Expiry: "05/26", Network: "Mastercard", Type: "Credit", Status: models.CardActive, Limit: 15000},
		},
		Loans: []models.Loan{
			{ID: "l1", CompanyID: "1", Lender: "Silicon Valley Bank", Name: "Venture Debt", PrincipalAmount: 500000, RemainingBalance: 320000, InterestRate: 5.5, Term: "48 months", MonthlyPayment: 11200, StartDate: "2023-01-15", Status: models.LoanActive},
			{ID: "l2", CompanyID: "2", Lender: "Shopify Capital", Name: "Inventory Financing", PrincipalAmount: 50000, RemainingBalance: 12000, InterestRate: 8.0, Term: "12 months", MonthlyPayment: 4500, StartDate: "2024-01-10", Status: models.LoanActive},
		},
		Institutions: []models.Institution{
			{
				ID: "i1", CompanyID: "1", Name: "Mercury Bank", LoginURL: "https://mercury.com/login",
				Email: "founder@cifr.io", Username: "cifr_admin", Password: "password123",
				Accounts: []models.InstitutionAccount{
					{ID: "ia1", Name: "Main Operating", Type: "Checking", Last4: "4452", Balance: 145000},
					{ID: "ia2", Name: "Tax Reserve", Type: "Savings", Last4: "8821", Balance: 45000},
				},
			},
		},
		Documents: []models.Document{
			{ID: "d1", CompanyID: "1", Name: "Articles of Incorporation", Type: "Formation", UploadDate: "2023-01-10", Notes: "Filed in Delaware"},
			{ID: "d2", CompanyID: "1", Name: "EIN Letter", Type: "Legal", UploadDate: "2023-01-15", Notes: "IRS Tax ID"},
			{ID: "d3", CompanyID: "2", Name: "Supplier Agreement - China", Type: "Contract", UploadDate: "2023-06-20", Notes: "Main manufacturer contract"},
		},
	}
}
