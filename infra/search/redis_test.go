package search

import (
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on whitespace and punctuation",
			input: "First National, Checking",
			want:  []string{"first", "national", "checking"},
		},
		{
			name:  "lowercases",
			input: "SAVINGS",
			want:  []string{"savings"},
		},
		{
			name:  "keeps digits",
			input: "account 0123456789",
			want:  []string{"account", "0123456789"},
		},
		{
			name:  "deduplicates preserving order",
			input: "bank bank Bank national",
			want:  []string{"bank", "national"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.input))
		})
	}
}

func TestKeyNamespacing(t *testing.T) {
	r := &redisSearchRepository{
		client: redis.NewClient(&redis.Options{}),
		prefix: "test:",
		logger: slog.Default(),
	}

	assert.Equal(t, "test:bankaccount:doc:abc", r.docKey("abc"))
	assert.Equal(t, "test:bankaccount:tok:savings", r.tokenKey("savings"))
	assert.Equal(t, "test:bankaccount:doctok:abc", r.docTokensKey("abc"))
}
