package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenHashID(t *testing.T) {
	a := GenHashID("salt", 7)
	assert.Len(t, a, 12)
	assert.Equal(t, a, GenHashID("salt", 7), "same input must give the same id")
	assert.NotEqual(t, a, GenHashID("salt", 8))
	assert.NotEqual(t, a, GenHashID("pepper", 7))
}

func TestUserTopic(t *testing.T) {
	topic := UserTopic("notify", "salt", 7)
	assert.True(t, strings.HasPrefix(topic, "notify:"))
	assert.NotEqual(t, "notify:7", topic)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "hello", max: 10, want: "hello"},
		{name: "exact", in: "hello", max: 5, want: "hello"},
		{name: "long", in: "hello world", max: 5, want: "hello..."},
		{name: "multibyte", in: "你好世界", max: 2, want: "你好..."},
		{name: "no limit", in: "hello", max: 0, want: "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
