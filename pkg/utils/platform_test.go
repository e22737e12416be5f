//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	t.Setenv("RIPPLE_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("RIPPLE_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honor RIPPLE_MOBILE_EMULATE=1")
	}
}
