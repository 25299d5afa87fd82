package segment_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/protocol/segment"
)

func TestSplit_ShortTextIsOneSegment(t *testing.T) {
	assert.Equal(t, []string{"Battery: 57%"}, segment.Split("Battery: 57%", segment.SMS))
	assert.Equal(t, []string{""}, segment.Split("", segment.SMS))

	exact := strings.Repeat("a", 160)
	assert.Equal(t, []string{exact}, segment.Split(exact, segment.SMS))
}

func TestSplit_LongTextUsesMultipartSize(t *testing.T) {
	text := strings.Repeat("b", 161)
	parts := segment.Split(text, segment.SMS)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 153)
	assert.Len(t, parts[1], 8)
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplit_RespectsRuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 10)
	parts := segment.Split(text, segment.Limits{Single: 4, Multi: 3})
	require.Len(t, parts, 4)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p))
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 3)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplit_DefaultsForZeroLimits(t *testing.T) {
	parts := segment.Split(strings.Repeat("c", 400), segment.Limits{})
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 160)
}

func TestSplit_UCS2Limits(t *testing.T) {
	assert.Len(t, segment.Split(strings.Repeat("ж", 70), segment.UCS2), 1)

	parts := segment.Split(strings.Repeat("ж", 71), segment.UCS2)
	require.Len(t, parts, 2)
	assert.Equal(t, 67, utf8.RuneCountInString(parts[0]))
	assert.Equal(t, 4, utf8.RuneCountInString(parts[1]))
}
