package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Build Errors
	// ============================================

	"W001": {
		Category: CategoryBuild,
		Message:  "no schema metadata for source class",
	},

	// ============================================
	// Render Errors
	// ============================================

	"W002": {
		Category: CategoryRender,
		Message:  "selector has an unsupported type",
	},
	"W003": {
		Category: CategoryRender,
		Message:  "changes value has an unsupported type",
	},
	"W004": {
		Category: CategoryRender,
		Message:  "changes callback returned a non-map value",
	},

	// ============================================
	// Config Errors
	// ============================================

	"W101": {
		Category: CategoryConfig,
		Message:  "source document cannot be decoded",
	},
	"W102": {
		Category: CategoryConfig,
		Message:  "schema registry file cannot be decoded",
	},
}

// Format renders the error for terminal display, including the suggestion
// when one is present.
func (e *Error) Format() string {
	out := e.Error()
	if e.Suggestion != "" {
		out += "\n  hint: " + e.Suggestion
	}
	return out
}
