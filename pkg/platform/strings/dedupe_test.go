package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,", expected: nil},
		{name: "trimmed", input: " 2500, 5000 ,7500", expected: []string{"2500", "5000", "7500"}},
		{name: "duplicates kept", input: "0,100,100,1000", expected: []string{"0", "100", "100", "1000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestSplitUnique(t *testing.T) {
	got := SplitUnique(" https://a.example, https://b.example,https://a.example,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)
	assert.Nil(t, SplitUnique(""))
}
