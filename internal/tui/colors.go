package tui

// Color constants for kfu TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#1C1210" // Dark warm brown
	ColorBorder         = "#4A3F36" // Muted bronze

	// Text Colors
	ColorPrimaryText   = "#F2EAE0" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#C7B8A8" // Secondary text - warm grey
	ColorDisabledText  = "#83766A" // Disabled/muted text
	ColorPlaceholder   = "#C7B8A8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Red & gold theme)
	ColorAccentMain   = "#D9322E" // Logo, accent elements, active borders
	ColorAccentBright = "#F2B63D" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
