package chatbot

import "regexp"

type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentReturns       Intent = "returns"
	IntentShipping      Intent = "shipping"
	IntentHelp          Intent = "help"
	IntentProductSearch Intent = "product_search"
	IntentUnknown       Intent = "unknown"
)

type patternEntry struct {
	intent  Intent
	pattern *regexp.Regexp
}

// patternTable is evaluated top to bottom and the first match wins, so the
// declaration order is part of the contract. product_search has no pattern:
// it is the fallback for anything the static intents do not claim.
var patternTable = []patternEntry{
	{IntentGreeting, regexp.MustCompile(`(?i)\b(hello|hi|hey|greetings|good morning|good afternoon|good evening)\b`)},
	{IntentReturns, regexp.MustCompile(`(?i)\b(return|refund|exchange|money back|policy)\b`)},
	{IntentShipping, regexp.MustCompile(`(?i)\b(shipping|delivery|ship|track|arrive|how long)\b`)},
	{IntentHelp, regexp.MustCompile(`(?i)\b(help|assist|support|human|agent)\b`)},
}

// DetectIntent classifies a raw message into exactly one intent. It never
// fails: messages that match no static pattern are treated as product
// searches.
func DetectIntent(message string) Intent {
	for _, entry := range patternTable {
		if entry.pattern.MatchString(message) {
			return entry.intent
		}
	}
	return IntentProductSearch
}
