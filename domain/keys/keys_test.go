package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "nonce:0xabc", RedisKey(PfxNonce, "0xabc"))
	assert.Equal(t, "a-b-c", CustomKey("-", "a", "b", "c"))
}

func TestGetPrefix(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"plain", ""},
		{"nonce:0xabc", "nonce"},
		{"registeredCollection:0xabc:extra", "registeredCollection:0xabc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPrefix(tt.key), tt.key)
	}
}
