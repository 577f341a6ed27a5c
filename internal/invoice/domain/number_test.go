package domain

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var numberPattern = regexp.MustCompile(`^INV-\d+-[0-9A-F]{4}$`)

func TestNewNumberFormat(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	number := NewNumber("INV", now)
	assert.Regexp(t, numberPattern, number)

	// The millisecond component keeps only the tail digits.
	millis := strings.Split(number, "-")[1]
	assert.Equal(t, 6, len(millis))
}

func TestNewNumberVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewNumber("INV", now)] = true
	}
	// The random suffix should make same-instant collisions rare.
	assert.Greater(t, len(seen), 1)
}

func TestNewNumberCustomPrefix(t *testing.T) {
	number := NewNumber("GARAGE", time.Now())
	assert.True(t, strings.HasPrefix(number, "GARAGE-"))
}
