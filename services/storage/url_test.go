package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712345678/report2clean/reports/abc123.jpg": "report2clean/reports/abc123",
		"https://res.cloudinary.com/demo/image/upload/report2clean/reports/abc123.png":              "report2clean/reports/abc123",
		"https://res.cloudinary.com/demo/image/upload/variant/abc.jpg":                              "variant/abc",
		"https://example.com/no-upload-segment.jpg":                                                 "",
	}
	for url, want := range cases {
		assert.Equal(t, want, publicIDFromURL(url), "url %s", url)
	}
}
