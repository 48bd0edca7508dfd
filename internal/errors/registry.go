package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Suggestion: "Create vango-ui.json or run without --config to use defaults",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid config file",
		Detail:     "The config file could not be parsed as JSON.",
		Suggestion: "Check that vango-ui.json is valid JSON",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Unknown environment",
		Suggestion: "Use one of: development, staging, production",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   "Durations use Go syntax, e.g. \"150ms\" or \"1s\".",
	},

	// ============================================
	// API Client Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryConfig,
		Message:  "Invalid API base URL",
	},
	"E201": {
		Category: CategoryValidation,
		Message:  "Invalid request",
	},
	"E202": {
		Category: CategoryTransport,
		Message:  "Request failed",
		Detail:   "The service could not be reached.",
	},
	"E203": {
		Category: CategoryTransport,
		Message:  "Unexpected response status",
	},
	"E204": {
		Category: CategoryProtocol,
		Message:  "Invalid response body",
	},
	"E205": {
		Category:   CategoryValidation,
		Message:    "Invalid branding",
		Suggestion: "brandColor must be a hex color such as #2563eb",
	},

	// ============================================
	// Server Errors (E300-E319)
	// ============================================

	"E300": {
		Category: CategoryRuntime,
		Message:  "Server failed",
	},
	"E301": {
		Category: CategoryProtocol,
		Message:  "Invalid client message",
	},
	"E302": {
		Category: CategoryRuntime,
		Message:  "Event queue full",
		Detail:   "The session is processing events slower than they arrive.",
	},

	// ============================================
	// CLI Errors (E400-E419)
	// ============================================

	"E400": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
