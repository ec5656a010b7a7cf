package domain

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Desktop_UserMgmt_List_Default@2x.png", "desktop usermgmt list default 2x"},
		{"hover-button.svg", "hover button"},
		{"mobile--product__detail.PNG", "mobile product detail"},
		{"  Landing Page.sketch", "landing page"},
		{"logo", "logo"},
		{"", ""},
		{"___", ""},
		{"checkout/cart/item.png", "checkout cart item"},
	}

	for _, tt := range tests {
		got := NormalizeName(tt.raw)
		if got != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Desktop_UserMgmt_List_Default@2x.png",
		"hover-button.svg",
		"already normalized text",
		"",
		"CAPS AND 123",
	}

	for _, raw := range inputs {
		once := NormalizeName(raw)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		raw      string
		expected AssetFormat
	}{
		{"screen.png", FormatPNG},
		{"photo.JPG", FormatJPG},
		{"photo.jpeg", FormatJPG},
		{"icon.svg", FormatSVG},
		{"anim.webp", FormatWebP},
		{"loader.gif", FormatGIF},
		{"spec.pdf", FormatPDF},
		{"tokens.json", FormatJSON},
		{"design.sketch", FormatSketch},
		{"mystery.xyz", FormatPNG}, // unlisted extensions default to raster
		{"no-extension", FormatPNG},
	}

	for _, tt := range tests {
		got := DetectFormat(tt.raw)
		if got != tt.expected {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestDetectScale(t *testing.T) {
	tests := []struct {
		raw      string
		expected AssetScale
	}{
		{"icon@3x.png", Scale3x},
		{"icon@2x.png", Scale2x},
		{"icon_3x.png", Scale3x},
		{"logo.svg", ScaleVector},
		{"spec.pdf", ScaleVector},
		{"screen.png", Scale1x},
		{"photo.jpg", Scale1x},
		// A 3x marker wins even on a vector extension
		{"icon@3x.svg", Scale3x},
	}

	for _, tt := range tests {
		got := DetectScale(tt.raw)
		if got != tt.expected {
			t.Errorf("DetectScale(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}
