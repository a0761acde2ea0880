package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingCode(t *testing.T) {
	prev := nowFunc
	nowFunc = func() time.Time {
		return time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	}
	defer func() { nowFunc = prev }()

	code := GenerateTrackingCode()
	assert.Len(t, code, 13)
	assert.True(t, strings.HasPrefix(code, "MNG250307"))
	assert.Regexp(t, `^MNG250307\d{4}$`, code)
}

func TestGenerateTrackingCodeDatePadding(t *testing.T) {
	prev := nowFunc
	nowFunc = func() time.Time {
		return time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	}
	defer func() { nowFunc = prev }()

	assert.True(t, strings.HasPrefix(GenerateTrackingCode(), "MNG260102"))
}
