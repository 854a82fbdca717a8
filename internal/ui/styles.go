package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green: file written
	ColorWarning   = lipgloss.Color("#FFB800") // yellow: reminders
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan: addresses, calldata
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold: values
	ColorMeta      = lipgloss.Color("#555555") // dim gray: hints, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue: UI chrome
	ColorChain     = lipgloss.Color("#9B5DE5") // purple: network names
	ColorHighlight = lipgloss.Color("#F15BB5") // pink: selected rows, headers
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleChain   = lipgloss.NewStyle().Foreground(ColorChain).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorChain).
			Bold(true)
)

// ruleWidth is the width of section rules.
const ruleWidth = 70

// Banner returns the one-line tool banner.
func Banner() string {
	return StyleTitle.Render("⛓  Token enable transaction generator") + "\n" +
		StyleMeta.Render(strings.Repeat("=", ruleWidth))
}

// Section renders a titled section header framed by rules.
func Section(title string) string {
	rule := StyleMeta.Render(strings.Repeat("=", ruleWidth))
	return rule + "\n" + StyleHeader.Render(title) + "\n" + rule
}

// NetworkHeader renders the header line for one network.
func NetworkHeader(name string, chainID int64) string {
	rule := StyleMeta.Render(strings.Repeat("=", 50))
	return rule + "\n" + ChainName(name) + " " + Meta("(Chain ID: "+itoa(chainID)+")") + "\n" + rule
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Hint formats a tip.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Addr formats an address.
func Addr(a string) string { return StyleAddress.Render(a) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// ChainName formats a chain name.
func ChainName(c string) string { return StyleChain.Render(c) }
