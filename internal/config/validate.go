package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError points at the config file, and the line or key, that is wrong.
type ValidationError struct {
	FilePath string
	Line     int
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s: %s %s", e.FilePath, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
}

// ValidateYAMLSyntax checks that the file at filePath is a YAML mapping.
// An empty file is valid.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		line, msg := splitYAMLError(err.Error())
		return &ValidationError{FilePath: filePath, Line: line, Message: msg}
	}
	if len(doc.Content) == 0 {
		return nil
	}
	if top := doc.Content[0]; top.Kind != yaml.MappingNode {
		return &ValidationError{
			FilePath: filePath,
			Line:     top.Line,
			Message:  "expected key: value settings at the top level",
		}
	}
	return nil
}

// splitYAMLError separates yaml.v3's "yaml: line N: msg" into its line and message.
func splitYAMLError(s string) (int, string) {
	rest, ok := strings.CutPrefix(s, "yaml: line ")
	if !ok {
		return 0, strings.TrimPrefix(s, "yaml: ")
	}
	num, msg, ok := strings.Cut(rest, ": ")
	if !ok {
		return 0, s
	}
	line, err := strconv.Atoi(num)
	if err != nil {
		return 0, s
	}
	return line, msg
}

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})
	return v
}

// ValidateConfigValues checks cfg against its validate tags and the rules
// tags cannot express. filePath names the source in the error.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				FilePath: filePath,
				Field:    fe.Field(),
				Message:  describeFieldError(fe),
			}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if strings.ContainsAny(cfg.DotStencilFile, `/\`) {
		return &ValidationError{
			FilePath: filePath,
			Field:    "dot_stencil_file",
			Message:  "must be a file name, not a path",
		}
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed validation: " + fe.Tag()
	}
}
