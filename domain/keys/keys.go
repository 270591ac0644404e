package keys

import (
	"strings"
)

const (
	// PfxNonce is used for prefixing login nonce redis key
	PfxNonce = "nonce"
	// PfxCollection is used for prefixing registered collection cache
	PfxCollection = "registeredCollection"
	// PfxFeeConfig is used for prefixing marketplace fee config cache
	PfxFeeConfig = "feeConfig"
	// PfxHealthCheck is used for the redis write check
	PfxHealthCheck = "healthCheck"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts at most two leading components of a key, used as metric tag
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
