// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: the
// directory, storage backends and HTTP handlers all import types without
// depending on each other.
package types

// Student is a single entry in the student directory.
//
// ID is assigned by the directory when the record is added. A value sent
// by a client is only used for the duplicate check and is then replaced.
//
// The validate:"..." tags are checked by go-playground/validator in the
// HTTP layer only. The directory itself never inspects Name or Email.
type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"  yaml:"name"  validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required"`
}
