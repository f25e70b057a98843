package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetCustomTheme_AccentsInputsAndButtons(t *testing.T) {
	accent := lipgloss.Color("205")
	th := GetCustomTheme("205")

	assert.Equal(t, accent, th.Focused.Title.GetForeground())
	assert.Equal(t, accent, th.Focused.TextInput.Cursor.GetForeground())
	assert.Equal(t, accent, th.Focused.TextInput.Prompt.GetForeground())
	assert.Equal(t, accent, th.Focused.FocusedButton.GetBackground())
	assert.Equal(t, lipgloss.Color("0"), th.Focused.FocusedButton.GetForeground())
}
