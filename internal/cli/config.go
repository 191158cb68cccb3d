package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/typesys"
)

// DefaultConfigFile is picked up from the working directory when --config is not given
const DefaultConfigFile = "viewinject.yaml"

// ConfigVersion is the current config format; any v1.x.y file is accepted
const ConfigVersion = "v1.0.0"

var validate = validator.New()

// Config holds the configuration for a generation round
type Config struct {
	// Version of the config file format, major version must be v1
	Version string `yaml:"version" validate:"omitempty,modversion"`

	// Directories is the list of directories to scan for annotated sources.
	// A trailing "/..." descends into subdirectories.
	Directories []string `yaml:"directories" validate:"dive,required"`

	// Out is the output root for companions. Empty writes each companion
	// next to its target's source file.
	Out string `yaml:"out"`

	// Types declares classes that are referenced but not compiled in this
	// round, such as custom widgets from a library
	Types []TypeConfig `yaml:"types" validate:"dive"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"-"`
}

// TypeConfig declares one external type
type TypeConfig struct {
	Name       string   `yaml:"name" validate:"required,qualified"`
	Super      string   `yaml:"super" validate:"omitempty,qualified,excluded_with=Interface"`
	Interfaces []string `yaml:"interfaces" validate:"dive,qualified"`
	Interface  bool     `yaml:"interface"`
}

func init() {
	_ = validate.RegisterValidation("modversion", func(fl validator.FieldLevel) bool {
		return semver.IsValid(fl.Field().String())
	})
	_ = validate.RegisterValidation("qualified", func(fl validator.FieldLevel) bool {
		return isQualifiedName(fl.Field().String())
	})
}

// LoadConfig reads a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "read", err)
	}
	return ParseConfig(path, data)
}

// ParseConfig parses and validates YAML config data. name identifies the
// source in error messages.
func ParseConfig(name string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigurationError(name, "parse", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapConfigurationError(name, "validate", err).
			WithSuggestion("accepted keys are version, directories, out and types")
	}
	return &cfg, nil
}

// Validate checks struct constraints and the format version
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var valErrs validator.ValidationErrors
		if stderrors.As(err, &valErrs) {
			messages := make([]string, 0, len(valErrs))
			for _, ve := range valErrs {
				messages = append(messages, ve.Namespace()+": "+formatValidationError(ve))
			}
			return errors.New(errors.ConfigurationErrorCode, strings.Join(messages, "; "))
		}
		return err
	}
	if c.Version != "" && semver.Major(c.Version) != semver.Major(ConfigVersion) {
		return errors.Newf(errors.ConfigurationErrorCode,
			"unsupported config version %s, expected %s", c.Version, semver.Major(ConfigVersion))
	}
	return nil
}

// Merge overlays values set on the command line. Non-empty flag values win.
func (c *Config) Merge(flags Config) {
	if len(flags.Directories) > 0 {
		c.Directories = flags.Directories
	}
	if flags.Out != "" {
		c.Out = flags.Out
	}
	c.Types = append(c.Types, flags.Types...)
	c.Verbose = c.Verbose || flags.Verbose
}

// DeclareTypes registers the configured external types with the universe
func (c *Config) DeclareTypes(universe *typesys.Universe) error {
	for _, t := range c.Types {
		err := universe.Declare(typesys.TypeInfo{
			Name:       t.Name,
			Super:      t.Super,
			Interfaces: t.Interfaces,
			Interface:  t.Interface,
		})
		if err != nil {
			return errors.WrapConfigurationError("types", "declare", err).
				WithContext("type", t.Name)
		}
	}
	return nil
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "modversion":
		return "must be a semantic version such as v1.0.0"
	case "qualified":
		return fmt.Sprintf("%q is not a qualified type name", ve.Value())
	case "excluded_with":
		return "must be empty for interfaces"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func isQualifiedName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			letter := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			digit := r >= '0' && r <= '9'
			if !letter && !(digit && i > 0) {
				return false
			}
		}
	}
	return true
}
