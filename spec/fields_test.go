package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		maxTokens int
		want      []string
	}{
		{
			name:      "three tokens plus remainder",
			line:      `KEY:HEAD value "quoted desc here" trailing text`,
			maxTokens: 3,
			want:      []string{"KEY:HEAD", "value", "quoted desc here", "trailing text"},
		},
		{
			name:      "remainder kept verbatim",
			line:      "HEADVER STRING 1.4 Version of the header, with  spaces,\ttabs & punctuation.",
			maxTokens: 3,
			want:      []string{"HEADVER", "STRING", "1.4", "Version of the header, with  spaces,\ttabs & punctuation."},
		},
		{
			name:      "fewer tokens than max gives no remainder",
			line:      "BLANK TEL",
			maxTokens: 3,
			want:      []string{"BLANK", "TEL"},
		},
		{
			name:      "exactly max tokens gives empty remainder",
			line:      "ONE TWO",
			maxTokens: 2,
			want:      []string{"ONE", "TWO", ""},
		},
		{
			name:      "quoted token may contain whitespace",
			line:      `BLANK TEL "---- Telescope info ----"`,
			maxTokens: 2,
			want:      []string{"BLANK", "TEL", `"---- Telescope info ----"`},
		},
		{
			name:      "quotes stripped from quoted token",
			line:      `KEY "a string type" 1.0 description`,
			maxTokens: 3,
			want:      []string{"KEY", "a string type", "1.0", "description"},
		},
		{
			name:      "empty line",
			line:      "",
			maxTokens: 3,
			want:      nil,
		},
		{
			name:      "tabs delimit tokens",
			line:      "A\tB\tC",
			maxTokens: 2,
			want:      []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fields(tt.line, tt.maxTokens))
		})
	}
}
