package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"artspace/internal/config"
)

func Test_RenderHeader(t *testing.T) {
	result := RenderHeader(60, "Still Life of Cat", "3/10")

	assert.Contains(t, result, "Still Life of Cat")
	assert.Contains(t, result, "3/10")
	assert.Contains(t, result, "─")
}

func Test_RenderHeader_TruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("a", 100)

	result := RenderHeader(40, title, "1/1")

	assert.NotContains(t, result, title)
	assert.Contains(t, result, "…")
}

func Test_RenderFooter(t *testing.T) {
	tests := []struct {
		name string
		info string
	}{
		{name: "Version only", info: ""},
		{name: "Version and info", info: "CPU 0.5% · MEM 12.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderFooter(80, tt.info, "q quit")

			assert.Contains(t, result, "v"+config.Version)
			assert.Contains(t, result, "q quit")
			assert.Contains(t, result, tt.info)
			assert.Equal(t, 2, lipgloss.Height(result))
		})
	}
}

func Test_Center(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		width    int
		expected string
		offset   int
	}{
		{name: "Pads evenly", block: "ab\ncd", width: 6, expected: "  ab\n  cd", offset: 2},
		{name: "Odd gap rounds down", block: "abc", width: 6, expected: " abc", offset: 1},
		{name: "Wider than width", block: "abcdef", width: 3, expected: "abcdef", offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, offset := Center(tt.block, tt.width)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func Test_Shift(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		offset   int
		expected string
	}{
		{name: "Right", block: "ab\ncd", offset: 2, expected: "  ab\n  cd"},
		{name: "Left drops columns", block: "  ab\n  cd", offset: -1, expected: " ab\n cd"},
		{name: "Left beyond line", block: "ab", offset: -5, expected: ""},
		{name: "Zero", block: "ab", offset: 0, expected: "ab"},
		{name: "Empty block", block: "", offset: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Shift(tt.block, tt.offset))
		})
	}
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "Fits", input: "hello", width: 5, expected: "hello"},
		{name: "Cut", input: "hello world", width: 8, expected: "hello w…"},
		{name: "Width one", input: "hello", width: 1, expected: "…"},
		{name: "Width zero", input: "hello", width: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}

func Test_PadRight(t *testing.T) {
	assert.Equal(t, "hi   ", PadRight("hi", 5))
	assert.Equal(t, "hello", PadRight("hello", 3))
}
