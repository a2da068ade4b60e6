// Custom error types for document loading, decoding, encoding and
// property validation.
package quill

import (
	"errors"
	"fmt"
)

// ErrDefaultHint is returned when a FontSet hint of SlotDefault is
// resolved or assigned a font name. "default" means the consuming
// application picks the font from its own configuration, so the model
// has no value to hand out.
var ErrDefaultHint = errors.New("default hint is a fallback: the value comes from the consuming software or system configuration")

// DocumentError represents a failure during a document-level operation
// such as loading or saving a file.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// MissingPartError indicates that a required part was not found in the
// document container.
type MissingPartError struct {
	Part string
}

func (e *MissingPartError) Error() string {
	return fmt.Sprintf("required part not found: %s", e.Part)
}

// NewMissingPartError creates a new missing-part error
func NewMissingPartError(part string) error {
	return &MissingPartError{Part: part}
}

// MarkupError represents an XML syntax failure in the document part.
type MarkupError struct {
	Cause error
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("markup error: %v", e.Cause)
}

func (e *MarkupError) Unwrap() error {
	return e.Cause
}

// NewMarkupError creates a new markup error
func NewMarkupError(cause error) error {
	return &MarkupError{Cause: cause}
}

// AttributeError represents a failure to decode an attribute value,
// typically a numeric attribute that did not parse.
type AttributeError struct {
	Element   string
	Attribute string
	Cause     error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute error on <%s %s>: %v", e.Element, e.Attribute, e.Cause)
}

func (e *AttributeError) Unwrap() error {
	return e.Cause
}

// NewAttributeError creates a new attribute error
func NewAttributeError(element, attribute string, cause error) error {
	return &AttributeError{
		Element:   element,
		Attribute: attribute,
		Cause:     cause,
	}
}

// StructureError indicates that the decoded content does not match the
// structure the model expects.
type StructureError struct {
	Message string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("content structure mismatch: %s", e.Message)
}

// NewStructureError creates a new structure error
func NewStructureError(message string) error {
	return &StructureError{Message: message}
}

// UnsupportedError indicates markup for a feature the model does not
// cover. It is only surfaced in strict mode; the default decode policy
// skips unknown markers.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("feature not supported: %s", e.Feature)
}

// NewUnsupportedError creates a new unsupported-feature error
func NewUnsupportedError(feature string) error {
	return &UnsupportedError{Feature: feature}
}

// InvalidHexError reports a color value that is not exactly six hex
// digits.
type InvalidHexError struct {
	Value string
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("HEX code not valid: %q", e.Value)
}

// PropertyNotSetError reports access to an optional property that has no
// value.
type PropertyNotSetError struct {
	Property string
}

func (e *PropertyNotSetError) Error() string {
	return fmt.Sprintf("property not set: %s", e.Property)
}

// HintUnsetError reports a FontSet whose hint selects a slot that holds
// no font name.
type HintUnsetError struct {
	Slot FontSlot
}

func (e *HintUnsetError) Error() string {
	return fmt.Sprintf("hint points to an unset value: %s slot is empty", e.Slot)
}

// MutuallyExclusiveError reports two properties that cannot be set at
// the same time.
type MutuallyExclusiveError struct {
	First  string
	Second string
}

func (e *MutuallyExclusiveError) Error() string {
	return fmt.Sprintf("properties %q and %q are mutually exclusive", e.First, e.Second)
}

// IsMissingPartError checks if an error is a missing-part error
func IsMissingPartError(err error) bool {
	var target *MissingPartError
	return errors.As(err, &target)
}

// IsMarkupError checks if an error is a markup error
func IsMarkupError(err error) bool {
	var target *MarkupError
	return errors.As(err, &target)
}

// IsAttributeError checks if an error is an attribute error
func IsAttributeError(err error) bool {
	var target *AttributeError
	return errors.As(err, &target)
}

// IsUnsupportedError checks if an error is an unsupported-feature error
func IsUnsupportedError(err error) bool {
	var target *UnsupportedError
	return errors.As(err, &target)
}

// IsInvalidHexError checks if an error is an invalid hex color error
func IsInvalidHexError(err error) bool {
	var target *InvalidHexError
	return errors.As(err, &target)
}

// IsMutuallyExclusiveError checks if an error reports mutually exclusive
// properties
func IsMutuallyExclusiveError(err error) bool {
	var target *MutuallyExclusiveError
	return errors.As(err, &target)
}
