// Package configschema provides loading and validation of forge.yaml.
//
// Overview:
//   - Responsibility: Parse forge.yaml, fill defaults, validate the schema
//   - Key Types: Config struct, Diagnostics for validation issues
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured validation diagnostics with suggestions
//   - Performance Notes: Single-pass parsing, one validator run per load
//
// forge.yaml is optional: a project without one runs on the defaults that
// match the stock boilerplate layout.
//
// Usage:
//
//	config, diags := configschema.Load("forge.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
package configschema

import (
	"fmt"
	"os"
	"text/template"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up at the project root.
const DefaultFileName = "forge.yaml"

// Defaults matching the stock boilerplate layout.
const (
	DefaultModulesDir    = "modules"
	DefaultSettingsFile  = "config/settings.py"
	DefaultAnchor        = "LOCAL_APPS = ["
	DefaultEntryTemplate = "    'modules.{{.Name}}.apps.{{.ClassName}}',"
)

// Config represents the forge project configuration.
type Config struct {
	ConfigVersion string `yaml:"config_version" validate:"required"`
	ProjectName   string `yaml:"project_name"`
	ModulesDir    string `yaml:"modules_dir" validate:"required"`
	SettingsFile  string `yaml:"settings_file" validate:"required"`
	Anchor        string `yaml:"anchor" validate:"required"`
	EntryTemplate string `yaml:"entry_template" validate:"required"`
}

// Diagnostic represents a single validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates an empty diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   SeverityError,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   SeverityWarning,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns the recorded diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// Default returns the configuration used when no forge.yaml exists.
func Default() *Config {
	return &Config{
		ConfigVersion: "1.0",
		ModulesDir:    DefaultModulesDir,
		SettingsFile:  DefaultSettingsFile,
		Anchor:        DefaultAnchor,
		EntryTemplate: DefaultEntryTemplate,
	}
}

// Load reads and validates the configuration file at path.
//
// Parameters:
//   - path: forge.yaml path
//
// Returns:
//   - *Config: Loaded configuration, nil on read/parse failure
//   - *Diagnostics: Validation issues
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if err != nil {
		diags.AddError(fmt.Sprintf("failed to read configuration file: %v", err), path, "Check the file path and permissions")
		return nil, diags
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		diags.AddError(fmt.Sprintf("failed to parse YAML: %v", err), path, "Check YAML syntax")
		return nil, diags
	}

	applyDefaults(&config)
	validateConfig(&config, diags)

	return &config, diags
}

// LoadOrDefault loads forge.yaml when present, otherwise returns the
// default configuration. A missing file is not an error.
func LoadOrDefault(path string) (*Config, *Diagnostics) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), NewDiagnostics()
	}
	return Load(path)
}

// applyDefaults fills in default values for missing configuration.
func applyDefaults(config *Config) {
	if config.ConfigVersion == "" {
		config.ConfigVersion = "1.0"
	}
	if config.ModulesDir == "" {
		config.ModulesDir = DefaultModulesDir
	}
	if config.SettingsFile == "" {
		config.SettingsFile = DefaultSettingsFile
	}
	if config.Anchor == "" {
		config.Anchor = DefaultAnchor
	}
	if config.EntryTemplate == "" {
		config.EntryTemplate = DefaultEntryTemplate
	}
}

// validateConfig validates the configuration and records diagnostics.
func validateConfig(config *Config, diags *Diagnostics) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				diags.AddError(
					fmt.Sprintf("field %s failed validation rule %q", fieldErr.Field(), fieldErr.Tag()),
					fieldErr.Namespace(),
					"Fill in the missing field or remove it to use the default",
				)
			}
		} else {
			diags.AddError(fmt.Sprintf("configuration validation failed: %v", err), "", "")
		}
	}

	// The entry template must be parseable; rendering failures at create
	// time would leave an orphaned module tree behind.
	if config.EntryTemplate != "" {
		if _, err := template.New("entry").Parse(config.EntryTemplate); err != nil {
			diags.AddError(
				fmt.Sprintf("entry_template is not a valid template: %v", err),
				"entry_template",
				"Use {{.Name}} and {{.ClassName}} placeholders",
			)
		}
	}

	if config.ConfigVersion != "1.0" {
		diags.AddWarning(
			fmt.Sprintf("unknown config_version %q, continuing with version 1.0 semantics", config.ConfigVersion),
			"config_version",
			`Set config_version to "1.0"`,
		)
	}
}
