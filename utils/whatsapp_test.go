package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"already international", "2349157286254", "2349157286254"},
		{"leading plus", "+2349157286254", "2349157286254"},
		{"local zero prefix", "09157286254", "2349157286254"},
		{"spaces and symbols", "+234 (915) 728-6254", "2349157286254"},
		{"local with spaces", "0915 728 6254", "2349157286254"},
		{"short number gets prefixed", "12345", "23412345"},
		{"empty", "", ""},
		{"symbols only", "+-() ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.raw, "234"))
		})
	}
}

func TestNormalizePhoneCountryCodeDefault(t *testing.T) {
	assert.Equal(t, "2348031112222", NormalizePhone("08031112222", ""))
	assert.Equal(t, "448031112222", NormalizePhone("08031112222", "44"))
}

func TestBuildChatLink(t *testing.T) {
	link := BuildChatLink("09157286254", "234", "Order #1: Jollof Rice ×2")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/2349157286254?text="))
	assert.Contains(t, link, "Jollof")
	assert.NotContains(t, link, " ", "payload must be URL-encoded")
}

func TestBuildChatLinkFallsBackWithoutDestination(t *testing.T) {
	link := BuildChatLink("", "234", "hello")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))

	link = BuildChatLink("+-()", "234", "hello")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
}
