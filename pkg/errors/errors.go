package errors

import (
	"fmt"
)

// TemplateError reports a card or inbox template that could not be built from
// feed data. Line is the 1-based position in the source document, or zero.
type TemplateError struct {
	Source  string
	CardID  string
	Line    int
	Message string
	Err     error
}

// NewTemplateError constructs a TemplateError.
func NewTemplateError(source, cardID string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &TemplateError{Source: source, CardID: cardID, Line: line, Message: message, Err: err}
}

func (e *TemplateError) Error() string {
	if e == nil {
		return ""
	}

	location := e.Source
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.CardID != "" {
		return fmt.Sprintf("template error: %s: card %s: %s", location, e.CardID, e.Message)
	}
	return fmt.Sprintf("template error: %s: %s", location, e.Message)
}

// Unwrap exposes the underlying error.
func (e *TemplateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProviderError wraps a failure raised by a content or template provider.
type ProviderError struct {
	Provider string
	Surface  string
	Err      error
}

// NewProviderError constructs a ProviderError.
func NewProviderError(provider, surface string, err error) error {
	return &ProviderError{Provider: provider, Surface: surface, Err: err}
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Surface != "" {
		return fmt.Sprintf("provider error [%s] surface %s: %v", e.Provider, e.Surface, e.Err)
	}
	return fmt.Sprintf("provider error [%s]: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ImageError reports a failed image fetch or decode.
type ImageError struct {
	URL string
	Err error
}

// NewImageError constructs an ImageError for the given URL.
func NewImageError(url string, err error) error {
	return &ImageError{URL: url, Err: err}
}

func (e *ImageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("image error %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ImageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError captures configuration validation issues.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(field, message string, err error) error {
	return &ConfigError{Field: field, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
