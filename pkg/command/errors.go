package command

import "fmt"

// ConfigError reports a programmer mistake in a handler's descriptor. These
// surface at registration time, never at invocation time, and should abort
// startup loudly.
type ConfigError struct {
	Handler string
	Reason  string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Handler == "" {
		return "invalid command descriptor: " + e.Reason
	}
	return fmt.Sprintf("invalid command descriptor for %s: %s", e.Handler, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(handler, format string, args ...any) *ConfigError {
	var wrapped error
	for _, a := range args {
		if err, ok := a.(error); ok {
			wrapped = err
		}
	}
	return &ConfigError{Handler: handler, Reason: fmt.Sprintf(format, args...), Err: wrapped}
}
