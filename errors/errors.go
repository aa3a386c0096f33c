// Package errors provides the typed failure envelope the core and CLI use to
// report the four error kinds the fusion pipeline can raise (spec §7):
// input-missing, collaborator-failed, malformed-hypothesis, and export-io.
package errors

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fulmenhq/docstruct/foundry"
)

// Code identifies which of the four error kinds an envelope carries.
type Code string

const (
	CodeInputMissing        Code = "DOCSTRUCT_INPUT_MISSING"
	CodeCollaboratorFailed  Code = "DOCSTRUCT_COLLABORATOR_FAILED"
	CodeMalformedHypothesis Code = "DOCSTRUCT_MALFORMED_HYPOTHESIS"
	CodeExportIO            Code = "DOCSTRUCT_EXPORT_IO"
)

// Envelope is the typed failure every fallible core function returns,
// carrying enough context for the CLI to report a useful message without
// the caller having to re-derive it from a bare error string.
type Envelope struct {
	Code          Code                   `json:"code"`
	Message       string                 `json:"message"`
	Path          string                 `json:"path,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Timestamp     string                 `json:"timestamp"`
	Original      string                 `json:"original,omitempty"`
}

// New creates an envelope with a fresh correlation ID and timestamp.
func New(code Code, message string) *Envelope {
	return &Envelope{
		Code:          code,
		Message:       message,
		CorrelationID: foundry.GenerateCorrelationID(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// WithPath attaches the filesystem path the failure concerns.
func (e *Envelope) WithPath(path string) *Envelope {
	e.Path = path
	return e
}

// WithDetails attaches structured context, e.g. a collaborator's exit code.
func (e *Envelope) WithDetails(details map[string]interface{}) *Envelope {
	e.Details = details
	return e
}

// WithOriginal records the wrapped error's message.
func (e *Envelope) WithOriginal(original error) *Envelope {
	if original != nil {
		e.Original = original.Error()
	}
	return e
}

// Error implements the error interface.
func (e *Envelope) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s (%s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MarshalJSON ensures Envelope serializes via its exported fields even
// though it satisfies the error interface.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	type alias Envelope
	return json.Marshal((*alias)(e))
}

// InputMissing reports that path does not exist or is not a regular file.
func InputMissing(path string, original error) *Envelope {
	return New(CodeInputMissing, "input path does not exist or is not a regular file").WithPath(path).WithOriginal(original)
}

// CollaboratorFailed reports a subprocess that exited nonzero or produced
// unparseable output.
func CollaboratorFailed(name string, original error) *Envelope {
	return New(CodeCollaboratorFailed, fmt.Sprintf("collaborator %q failed", name)).WithOriginal(original)
}

// MalformedHypothesis reports a non-finite bbox or negative page index
// rejected at ingress.
func MalformedHypothesis(reason string) *Envelope {
	return New(CodeMalformedHypothesis, reason)
}

// ExportIO reports a filesystem write or directory-create failure.
func ExportIO(path string, original error) *Envelope {
	return New(CodeExportIO, "failed to write export output").WithPath(path).WithOriginal(original)
}
