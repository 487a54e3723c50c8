package chatbot

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"plain greeting", "Hello", IntentGreeting},
		{"greeting inside sentence", "well hi there friend", IntentGreeting},
		{"greeting case insensitive", "GOOD MORNING", IntentGreeting},
		{"returns", "what is your refund policy", IntentReturns},
		{"shipping", "how long does delivery take", IntentShipping},
		{"help", "I need to talk to a human", IntentHelp},
		{"falls back to product search", "gold necklace", IntentProductSearch},
		{"empty message falls through", "", IntentProductSearch},
		{"word boundary not substring", "shipment of hithere", IntentProductSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIntent(tt.message); got != tt.want {
				t.Errorf("DetectIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectIntentEvaluationOrder(t *testing.T) {
	// A message hitting several static patterns must resolve to the one
	// declared first.
	tests := []struct {
		message string
		want    Intent
	}{
		{"hi, I want to return this ring", IntentGreeting},
		{"return my shipping order", IntentReturns},
		{"track my order, help me", IntentShipping},
	}

	for _, tt := range tests {
		if got := DetectIntent(tt.message); got != tt.want {
			t.Errorf("DetectIntent(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestDetectIntentIdempotent(t *testing.T) {
	msg := "hello, do you ship abroad?"
	first := DetectIntent(msg)
	for i := 0; i < 5; i++ {
		if got := DetectIntent(msg); got != first {
			t.Fatalf("classification changed between calls: %q then %q", first, got)
		}
	}
}
