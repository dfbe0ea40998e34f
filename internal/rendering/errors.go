package rendering

import "fmt"

// RenderError represents a PDF assembly failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ChartError represents a chart image rendering failure
type ChartError struct {
	Message string
	Cause   error
}

func (e *ChartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("chart error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("chart error: %s", e.Message)
}

func (e *ChartError) Unwrap() error {
	return e.Cause
}
