package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LifeOS theme (CLI + TUI).

const (
	IconDay     = "📅"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconOpen    = "⬜"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconError   = "🧨"
	IconClock   = "⏰"
	IconLoop    = "🔁"
	IconScroll  = "📜"
	IconMoney   = "💰"
	IconFire    = "🔥"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

// dimensionColors maps the presentation color names stored on dimensions.
var dimensionColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("196"),
	"green":  lipgloss.Color("42"),
	"blue":   lipgloss.Color("33"),
	"orange": lipgloss.Color("214"),
	"purple": lipgloss.Color("135"),
	"pink":   lipgloss.Color("205"),
}

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// LevelText colors a dimension level label.
func LevelText(level string) string {
	switch level {
	case "Excellent":
		return Gold.Render(level)
	case "Good":
		return Good.Render(level)
	case "Average":
		return H2.Render(level)
	case "Poor":
		return Warn.Render(level)
	case "Critical":
		return Bad.Render(level)
	default:
		return Muted.Render(level)
	}
}

// DimensionName renders name in the dimension's color.
func DimensionName(name, color string) string {
	c, ok := dimensionColors[color]
	if !ok {
		return Key.Render(name)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(name)
}

func CheckIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconOpen
}

func DoneText(done bool) string {
	if done {
		return Good.Render("done")
	}
	return Warn.Render("open")
}

// Bar renders value/total as a fixed-width bar.
func Bar(value, total float64, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	ratio := value / total
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
