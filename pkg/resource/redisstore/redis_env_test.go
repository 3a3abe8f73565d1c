//go:build !integration

package redisstore

import (
	"os"
	"testing"
)

// testRedisAddr returns REDIS_ADDR and skips the test when it is unset. Run
// with -tags integration to start a throwaway container instead.
func testRedisAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	return addr
}
