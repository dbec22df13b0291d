package extract

import "strings"

// legalKeywords mark a page as likely legal text when found in its URL,
// title, or first heading.
var legalKeywords = []string{
	"terms", "privacy", "policy", "agreement", "conditions", "legal", "tos", "gdpr",
}

// IsLegalPage reports whether any of the page's URL, title, or first
// heading contains a legal keyword. Case-insensitive; empty fields are
// simply skipped.
func IsLegalPage(url, title, heading string) bool {
	for _, field := range []string{url, title, heading} {
		if field == "" {
			continue
		}
		lower := strings.ToLower(field)
		for _, kw := range legalKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
