package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/dmitrijs2005/founderstack/internal/views"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// burnCurrency is the display currency of aggregated burn. Subscriptions in
// other currencies are summed at face value.
const burnCurrency = "USD"

func decimalOf(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return cell(s)
}

// DashboardMarkdown lists the companies matching query with their counts,
// monthly burn and activity.
func DashboardMarkdown(snap models.Snapshot, query string, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	doc.PlainTextf("Total monthly burn: %s", md.Bold(views.Money(views.TotalMonthlyBurn(snap), burnCurrency)))

	companies := views.FilterCompanies(snap.Companies, query)
	if len(companies) == 0 {
		doc.PlainText("No companies match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		n := views.CompanyCounts(snap, c.ID)
		rows = append(rows, []string{
			cell(c.ID),
			cell(c.Name),
			orDash(c.Structure),
			strconv.Itoa(n.Accounts),
			strconv.Itoa(n.Subscriptions),
			strconv.Itoa(n.FinancialItems),
			strconv.Itoa(n.Documents),
			views.Money(views.CompanyBurn(snap, c.ID), burnCurrency),
			views.TimeAgo(c.LastModified, now),
			views.TimeAgo(c.LastViewed, now),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Company", "Structure", "Accounts", "Subs", "Financial", "Docs", "Burn/mo", "Modified", "Viewed"},
		Rows:   rows,
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignLeft, md.AlignLeft,
		},
	})
	return doc.String()
}

// DetailMarkdown renders one tab of a company detail view.
func DetailMarkdown(d views.Detail, tab models.Tab) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(d.Company.Name)
	if d.Company.Description != "" {
		doc.PlainText(d.Company.Description)
	}
	doc.PlainTextf("%s, monthly burn %s", orDash(d.Company.Structure),
		md.Bold(views.Money(views.MonthlyBurn(d.Subscriptions), burnCurrency)))

	switch tab {
	case models.TabSubscriptions:
		subscriptionsSection(doc, d.Subscriptions)
	case models.TabFinancial:
		financialSection(doc, d)
	case models.TabDocs:
		documentsSection(doc, d.Documents)
	case models.TabInsights:
		insightsSection(doc, d.Subscriptions)
	default:
		accountsSection(doc, d.Accounts)
	}
	return doc.String()
}

func accountsSection(doc *md.Markdown, accounts []models.Account) {
	doc.H2(fmt.Sprintf("Accounts (%d)", len(accounts)))
	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return
	}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		cost := "-"
		if a.PricingModel == models.PricingPaid && a.SubscriptionCost > 0 {
			cost = views.MoneyFloat(a.SubscriptionCost, burnCurrency) + "/" + strings.ToLower(orDash(a.SubscriptionInterval))
		}
		rows = append(rows, []string{
			cell(a.ID), cell(a.Platform), orDash(a.Email), orDash(a.TwoFactorAuth),
			cell(a.PricingModel), cost, cell(strings.Join(a.Notes, "; ")),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Platform", "Email", "2FA", "Pricing", "Cost", "Notes"},
		Rows:   rows,
	})
}

func subscriptionsSection(doc *md.Markdown, subs []models.Subscription) {
	doc.H2(fmt.Sprintf("Subscriptions (%d)", len(subs)))
	if len(subs) == 0 {
		doc.PlainText("No subscriptions.")
		return
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			cell(s.ID), cell(s.Name),
			views.Money(views.SubscriptionTotal(s), s.Currency),
			cell(s.BillingCycle),
			views.Money(views.SubscriptionMonthly(s), s.Currency),
			orDash(s.NextRenewal), cell(s.Status), orDash(s.Email),
		})
	}
	doc.Table(md.TableSet{
		Header:    []string{"ID", "Name", "Cost", "Cycle", "Monthly", "Renews", "Status", "Email"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
	})
}

func financialSection(doc *md.Markdown, d views.Detail) {
	doc.H2(fmt.Sprintf("Cards (%d)", len(d.Cards)))
	if len(d.Cards) > 0 {
		rows := make([][]string, 0, len(d.Cards))
		for _, c := range d.Cards {
			rows = append(rows, []string{
				cell(c.ID), cell(c.Name), cell(c.Network) + " ••" + cell(c.Last4),
				orDash(c.Expiry), cell(c.Type), cell(c.Status), views.WholeMoney(decimalOf(c.Limit), burnCurrency),
			})
		}
		doc.Table(md.TableSet{Header: []string{"ID", "Card", "Number", "Expiry", "Type", "Status", "Limit"}, Rows: rows})
	}

	doc.H2(fmt.Sprintf("Loans (%d)", len(d.Loans)))
	if len(d.Loans) > 0 {
		rows := make([][]string, 0, len(d.Loans))
		for _, l := range d.Loans {
			rows = append(rows, []string{
				cell(l.ID), cell(l.Name), cell(l.Lender),
				views.WholeMoney(decimalOf(l.RemainingBalance), burnCurrency) + " of " + views.WholeMoney(decimalOf(l.PrincipalAmount), burnCurrency),
				strconv.FormatFloat(l.InterestRate, 'f', -1, 64) + "%",
				views.MoneyFloat(l.MonthlyPayment, burnCurrency), cell(l.Status),
			})
		}
		doc.Table(md.TableSet{Header: []string{"ID", "Loan", "Lender", "Remaining", "Rate", "Monthly", "Status"}, Rows: rows})
	}

	doc.H2(fmt.Sprintf("Banks (%d)", len(d.Institutions)))
	for _, in := range d.Institutions {
		doc.H3(fmt.Sprintf("%s (%s), balance %s", in.Name, in.ID, views.Money(views.InstitutionBalance(in), burnCurrency)))
		if in.LoginURL != "" || in.Username != "" {
			doc.PlainTextf("Login: %s %s", orDash(in.LoginURL), orDash(in.Username))
		}
		items := make([]string, 0, len(in.Accounts))
		for _, ia := range in.Accounts {
			items = append(items, fmt.Sprintf("%s (%s ••%s): %s", ia.Name, ia.Type, ia.Last4, views.MoneyFloat(ia.Balance, burnCurrency)))
		}
		doc.BulletList(items...)
	}
}

func documentsSection(doc *md.Markdown, docs []models.Document) {
	doc.H2(fmt.Sprintf("Documents (%d)", len(docs)))
	if len(docs) == 0 {
		doc.PlainText("No documents.")
		return
	}
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		link := d.URL
		if strings.HasPrefix(link, "data:") {
			link = "(embedded file)"
		}
		rows = append(rows, []string{cell(d.ID), cell(d.Name), cell(d.Type), orDash(d.UploadDate), orDash(link), orDash(d.Notes)})
	}
	doc.Table(md.TableSet{Header: []string{"ID", "Name", "Type", "Uploaded", "Link", "Notes"}, Rows: rows})
}

func insightsSection(doc *md.Markdown, subs []models.Subscription) {
	doc.H2("Insights")
	doc.BulletList(
		fmt.Sprintf("Monthly burn: %s", views.Money(views.MonthlyBurn(subs), burnCurrency)),
		fmt.Sprintf("Yearly run rate: %s", views.Money(views.MonthlyBurn(subs).Mul(decimal.NewFromInt(12)), burnCurrency)),
		fmt.Sprintf("Active tools: %d", views.ActiveTools(subs)),
	)
	doc.PlainText("Type 'insights' for cost-saving suggestions.")
}

// BurnMarkdown lists the monthly burn of every company and the total.
func BurnMarkdown(snap models.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly burn")
	rows := make([][]string, 0, len(snap.Companies)+1)
	for _, c := range snap.Companies {
		rows = append(rows, []string{cell(c.Name), views.Money(views.CompanyBurn(snap, c.ID), burnCurrency)})
	}
	rows = append(rows, []string{md.Bold("Total"), md.Bold(views.Money(views.TotalMonthlyBurn(snap), burnCurrency))})
	doc.Table(md.TableSet{
		Header:    []string{"Company", "Burn/mo"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
	return doc.String()
}

// SearchMarkdown renders global search hits grouped by kind.
func SearchMarkdown(res views.SearchResults, query string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Results for %q", query))
	if !res.HasResults() {
		doc.PlainText("Nothing found.")
		return doc.String()
	}

	if len(res.Companies) > 0 {
		doc.H2("Companies")
		items := make([]string, 0, len(res.Companies))
		for _, c := range res.Companies {
			items = append(items, fmt.Sprintf("%s (%s)", c.Name, c.ID))
		}
		doc.BulletList(items...)
	}
	if len(res.Accounts) > 0 {
		doc.H2("Accounts")
		items := make([]string, 0, len(res.Accounts))
		for _, h := range res.Accounts {
			items = append(items, fmt.Sprintf("%s, %s (%s) in %s", h.Platform, orDash(h.Email), h.ID, ownerName(h.Owner)))
		}
		doc.BulletList(items...)
	}
	if len(res.Subscriptions) > 0 {
		doc.H2("Subscriptions")
		items := make([]string, 0, len(res.Subscriptions))
		for _, h := range res.Subscriptions {
			items = append(items, fmt.Sprintf("%s, %s (%s) in %s",
				h.Name, views.Money(views.SubscriptionTotal(h.Subscription), h.Currency), h.ID, ownerName(h.Owner)))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}

func ownerName(o views.Owner) string {
	if o.CompanyName == "" {
		return "an unknown company"
	}
	return o.CompanyName
}
