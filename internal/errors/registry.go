package errors

import "sort"

// ErrorTemplate defines a registered error code.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

const docBase = "https://domkit.dev/docs/errors/"

var registry = map[string]ErrorTemplate{
	// Configuration (E100-E139)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No domkit.yaml or domkit.json was found in this directory or any parent.",
		Suggestion: "Run the command from your project directory, or pass --config",
		DocURL:     docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration syntax",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid dev server port",
		Suggestion: "Set dev.port to a free port, e.g. 3000",
		DocURL:     docBase + "E102",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Invalid default route",
		Detail:     "defaultRoute must be a path starting with \"/\".",
		Suggestion: "Use defaultRoute: \"/\"",
		DocURL:     docBase + "E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .yaml, .yml or .json.",
		DocURL:   docBase + "E104",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Could not write configuration",
		DocURL:   docBase + "E105",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "log.level must be one of debug, info, warn or error.",
		DocURL:   docBase + "E106",
	},

	// Command line (E140-E159)

	"E140": {
		Category: CategoryCLI,
		Message:  "Not a domkit project",
		Detail:   "The app package configured in paths.app does not exist.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category:   CategoryCLI,
		Message:    "Port already in use",
		Suggestion: "Stop the other process or pass --port",
		DocURL:     docBase + "E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Dev server failed",
		DocURL:   docBase + "E142",
	},
	"E143": {
		Category:   CategoryCLI,
		Message:    "Go not found",
		Detail:     "Go is not installed or not in PATH.",
		Suggestion: "Install Go from https://go.dev/dl/",
		DocURL:     docBase + "E143",
	},

	// Build and pre-render (E160-E179)

	"E160": {
		Category: CategoryBuild,
		Message:  "WebAssembly build failed",
		Detail:   "go build for GOOS=js GOARCH=wasm reported errors.",
		DocURL:   docBase + "E160",
	},
	"E161": {
		Category:   CategoryBuild,
		Message:    "wasm_exec.js not found",
		Detail:     "The WebAssembly support script was not found in GOROOT.",
		Suggestion: "Check that `go env GOROOT` points at a complete Go installation",
		DocURL:     docBase + "E161",
	},
	"E162": {
		Category: CategoryBuild,
		Message:  "Pre-render failed",
		Detail:   "A route panicked or could not be written while rendering static pages.",
		DocURL:   docBase + "E162",
	},
	"E163": {
		Category: CategoryBuild,
		Message:  "Could not write build output",
		DocURL:   docBase + "E163",
	},

	// Publishing (E180-E199)

	"E180": {
		Category:   CategoryPublish,
		Message:    "No publish bucket configured",
		Suggestion: "Set publish.bucket in domkit.yaml or pass --bucket",
		DocURL:     docBase + "E180",
	},
	"E181": {
		Category:   CategoryPublish,
		Message:    "Could not load AWS configuration",
		Suggestion: "Configure credentials with AWS_PROFILE or the standard AWS environment variables",
		DocURL:     docBase + "E181",
	},
	"E182": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		DocURL:   docBase + "E182",
	},
}

// GetAllCodes returns all registered codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
