package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Binding Errors (B001-B019)
	// ============================================

	"B001": {
		Category: CategoryValidation,
		Message:  "Malformed binding attribute",
		Detail:   "An element declares bindings but one of the paired attributes is absent. Elements with a data-events attribute must also carry data-handlers.",
		DocURL:   "https://bindkit.dev/docs/errors/B001",
	},
	"B002": {
		Category: CategoryValidation,
		Message:  "Handler not found",
		Detail:   "A declared handler name has no entry in the handler registry. The registry must be fully populated before the binding pass runs.",
		DocURL:   "https://bindkit.dev/docs/errors/B002",
	},
	"B003": {
		Category: CategoryValidation,
		Message:  "Handler not callable",
		Detail:   "The handler registry has an entry for this name, but it is nil. Register a non-nil function.",
		DocURL:   "https://bindkit.dev/docs/errors/B003",
	},
	"B004": {
		Category: CategoryValidation,
		Message:  "Event and handler lists differ in length",
		Detail:   "The data-events and data-handlers lists must contain the same number of tokens; position i of the event list is bound to position i of the handler list.",
		DocURL:   "https://bindkit.dev/docs/errors/B004",
	},
	"B005": {
		Category: CategoryValidation,
		Message:  "Binding pass failed",
		Detail:   "One or more elements could not be bound. Inspect the joined element errors for details.",
		DocURL:   "https://bindkit.dev/docs/errors/B005",
	},

	// ============================================
	// Protocol Errors (B060-B079)
	// ============================================

	"B060": {
		Category: CategoryProtocol,
		Message:  "WebSocket connection failed",
		Detail:   "Unable to establish or maintain the WebSocket bridge to the client page.",
		DocURL:   "https://bindkit.dev/docs/errors/B060",
	},
	"B061": {
		Category: CategoryProtocol,
		Message:  "Invalid message format",
		Detail:   "The received bridge message could not be decoded as a Bindkit frame.",
		DocURL:   "https://bindkit.dev/docs/errors/B061",
	},
	"B062": {
		Category: CategoryProtocol,
		Message:  "Unknown message kind",
		Detail:   "The frame kind is not recognized by this version of the bridge protocol.",
		DocURL:   "https://bindkit.dev/docs/errors/B062",
	},
	"B063": {
		Category: CategoryProtocol,
		Message:  "Dispatch target not found",
		Detail:   "The element id referenced by a bridge event does not exist in the bound document.",
		DocURL:   "https://bindkit.dev/docs/errors/B063",
	},
	"B064": {
		Category: CategoryProtocol,
		Message:  "Frame too large",
		Detail:   "The bridge message exceeds the maximum frame size.",
		DocURL:   "https://bindkit.dev/docs/errors/B064",
	},

	// ============================================
	// Configuration Errors (B120-B139)
	// ============================================

	"B120": {
		Category: CategoryConfig,
		Message:  "Invalid bindkit.json",
		Detail:   "The bindkit.json configuration file is malformed.",
		DocURL:   "https://bindkit.dev/docs/errors/B120",
	},
	"B121": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is outside the valid range.",
		DocURL:   "https://bindkit.dev/docs/errors/B121",
	},
	"B122": {
		Category: CategoryConfig,
		Message:  "Invalid attribute name",
		Detail:   "Binding attribute names must be non-empty and must not contain whitespace.",
		DocURL:   "https://bindkit.dev/docs/errors/B122",
	},

	// ============================================
	// CLI Errors (B140-B159)
	// ============================================

	"B140": {
		Category: CategoryCLI,
		Message:  "Document not found",
		Detail:   "The HTML document passed to the command does not exist or is not readable.",
		DocURL:   "https://bindkit.dev/docs/errors/B140",
	},
	"B141": {
		Category: CategoryCLI,
		Message:  "Document parse failed",
		Detail:   "The HTML document could not be parsed.",
		DocURL:   "https://bindkit.dev/docs/errors/B141",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
