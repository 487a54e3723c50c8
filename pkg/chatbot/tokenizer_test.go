package chatbot

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"punctuation stripped and lowercased", "Red Shoes!!", []string{"red", "shoes"}},
		{"short words dropped", "is a to", nil},
		{"mixed lengths", "it is a red gem", []string{"red", "gem"}},
		{"duplicates kept in order", "gold gold ring", []string{"gold", "gold", "ring"}},
		{"digits survive", "ring size 10mm", []string{"ring", "size", "10mm"}},
		{"empty message", "", nil},
		{"only punctuation", "?!...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}
