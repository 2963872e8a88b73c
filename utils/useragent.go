package utils

import (
	"fmt"
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseUserAgent extracts browser, OS and device type from a User-Agent
// string.
func ParseUserAgent(userAgent string) (browser, os, device string) {
	if userAgent == "" {
		return "Unknown Browser", "Unknown OS", "Desktop"
	}

	parsedUA := ua.Parse(userAgent)

	browser = parsedUA.Name
	if browser == "" {
		browser = "Unknown Browser"
	}

	os = parsedUA.OS
	if os == "" {
		os = "Unknown OS"
	}

	device = "Desktop"
	if parsedUA.Mobile {
		device = "Mobile"
	} else if parsedUA.Tablet {
		device = "Tablet"
	}

	return strings.TrimSpace(browser), strings.TrimSpace(os), device
}

// GenerateSessionName creates a user-friendly session display name.
func GenerateSessionName(userAgent string) string {
	browser, os, device := ParseUserAgent(userAgent)
	return fmt.Sprintf("%s on %s (%s)", browser, os, device)
}
