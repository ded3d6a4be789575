package namelist

import "fmt"

// UnknownCaseError reports a case name with no registered builder.
type UnknownCaseError struct {
	Name string
}

func (e *UnknownCaseError) Error() string {
	return fmt.Sprintf("unknown case %q", e.Name)
}

// MissingMetadataError reports a meta field that must be set before writing.
type MissingMetadataError struct {
	Field string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("meta.%s not specified in namelist", e.Field)
}
