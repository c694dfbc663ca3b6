package proposal

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaymentTermsLabel maps a payment-terms code to its display text. Unknown
// codes pass through verbatim.
func PaymentTermsLabel(code string) string {
	switch code {
	case "net15":
		return "Net 15 Days"
	case "net30":
		return "Net 30 Days"
	case "net45":
		return "Net 45 Days"
	case "net60":
		return "Net 60 Days"
	case "immediate":
		return "Immediate Payment"
	case "custom":
		return "Custom Terms"
	default:
		return code
	}
}

func EngagementTypeLabel(t string) string {
	switch t {
	case "one-time":
		return "One-time Project"
	case "ongoing":
		return "Ongoing Services"
	case "retainer":
		return "Retainer Agreement"
	default:
		return t
	}
}

// ServiceTypeLabel returns the display name for a known service-type code, or
// "" when the code is not one of the catalog's standard keys.
func ServiceTypeLabel(t string) string {
	switch t {
	case "iso27001-audit":
		return "ISO 27001 Audit Only"
	case "iso27001-implementation":
		return "ISO 27001 Implementation Only"
	case "iso27001-implementation-audit":
		return "ISO 27001 Implementation + Audit"
	case "soc2-type1":
		return "SOC 2 Type 1"
	case "soc2-type2":
		return "SOC 2 Type 2"
	case "vapt":
		return "Vulnerability Assessment and Penetration Testing (VAPT)"
	case "security-assessment":
		return "Security Assessment"
	case "cloud-security-assessment":
		return "Cloud Security Assessment"
	default:
		return ""
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z"}

// LongDate renders an ISO date string as "January 2, 2006". Missing or
// unparseable input renders as the placeholder rather than failing.
func LongDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return Placeholder
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return Placeholder
}

var enUS = message.NewPrinter(language.AmericanEnglish)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
}

// FormatCurrency renders a string-typed amount using en-US grouping rules,
// e.g. ("15000", "USD") -> "$15,000.00". Currency defaults to USD; a
// non-numeric amount is treated as zero.
func FormatCurrency(amount, code string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		v = 0
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}
	if sym, ok := currencySymbols[code]; ok {
		return enUS.Sprintf("%s%.2f", sym, v)
	}
	return enUS.Sprintf("%s %.2f", code, v)
}

// JoinNames joins display names following English list conventions:
// "A", "A & B", "A, B & C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
	}
}

// Title synthesizes the document title from the distinct scope display names,
// preserving first-seen order.
func Title(scopes []EnrichedScope) string {
	seen := make(map[string]bool, len(scopes))
	var names []string
	for _, s := range scopes {
		name := s.DisplayName
		if name == "" || name == Placeholder || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return "Project Proposal"
	}
	return "Proposal for " + JoinNames(names)
}

// ValueOr substitutes the placeholder for empty display values.
func ValueOr(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return Placeholder
}
