package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kubev2v/whereql/internal/config"
)

var configValidator = validator.New()

func validateConfiguration(cfg *config.Configuration) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, validationMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.StructNamespace() {
	case "Configuration.Server.HTTPPort":
		return fmt.Sprintf("invalid http-port %v: must be between 1 and 65535", fe.Value())
	case "Configuration.Server.ServerMode":
		return fmt.Sprintf("invalid server mode %q: must be one of dev, prod", fe.Value())
	case "Configuration.Query.NumWorkers":
		return fmt.Sprintf("invalid num-workers %v: must be at least 1", fe.Value())
	case "Configuration.LogLevel":
		return fmt.Sprintf("invalid log level %q: must be one of debug, info, warn, error", fe.Value())
	case "Configuration.LogFormat":
		return fmt.Sprintf("invalid log format %q: must be one of console, json", fe.Value())
	default:
		return fe.Error()
	}
}
