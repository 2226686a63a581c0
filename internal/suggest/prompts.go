package suggest

import "fmt"

var fallbackQuotes = []string{
	"The best way to predict the future is to create it. - Peter Drucker",
	"The way to get started is to quit talking and begin doing. - Walt Disney",
	"Your time is limited, so don't waste it living someone else's life. - Steve Jobs",
	"If you are not embarrassed by the first version of your product, you've launched too late. - Reid Hoffman",
	"Sustain a vision of who you want to be. - Oprah Winfrey",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"Risk more than others think is safe. Dream more than others think is practical. - Howard Schultz",
}

const (
	insightsQuotaFallback = "We are experiencing high traffic. Please manually review your subscriptions for unused seats or opportunities to switch to annual billing for discounts."
	insightsFallback      = "Could not generate insights at this time."
	insightsEmpty         = "No strategic insights available."

	askQuotaFallback = "I'm momentarily unavailable due to high request volume. Please try again shortly."
	askFallback      = "I couldn't process that query right now."
)

const quotePrompt = `Provide one short, highly inspiring quote for entrepreneurs or business owners. Return only the quote and the author name. Example: "The way to get started is to quit talking and begin doing. - Walt Disney"`

func insightsPrompt(subsJSON string) string {
	return "Analyze these business subscriptions and provide 3 brief strategic suggestions to save money or optimize the tech stack. Subscriptions: " + subsJSON
}

func parsePrompt(text string) string {
	return fmt.Sprintf("Parse the following raw text into a structured JSON account object. Text: %q", text)
}

func askPrompt(dataJSON, question string) string {
	return fmt.Sprintf(`
You are a smart portfolio manager assistant for an entrepreneur.

Here is the minified data of all companies, accounts, and subscriptions:
%s

User Question: %q

Instructions:
1. Answer briefly and directly (max 2 sentences).
2. If the user asks about costs, sum them up across relevant companies.
3. If the user asks for a login/email, specify which company it belongs to.
4. Be helpful and professional.
`, dataJSON, question)
}

func emailPurposePrompt(name string) string {
	return fmt.Sprintf(`Provide a very short (max 12 words), professional, and strategic explanation of what the primary account email for %q is typically used for in a company.
Focus on things like 'Primary Admin', 'Billing notifications', 'Team invites', 'SSO ownership', etc.
Example for GitHub: "Receives all pull request notifications, team invites, and security alerts."
Example for AWS: "Root account owner for billing, console access, and IAM escalation."
Return ONLY the purpose text, no quotes or prefix.`, name)
}
