package options

import (
	"fmt"
	"strings"
)

// MissingOptionError reports a required option that was not supplied.
type MissingOptionError struct {
	Key string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("option %q is required", e.Key)
}

// RegionResolutionError reports that no AWS region could be determined from
// either the explicit option or the ambient environment.
type RegionResolutionError struct {
	Err error
}

func (e *RegionResolutionError) Error() string {
	return fmt.Sprintf("unable to determine an AWS region: set the %q option or configure a default region: %v", OptRegion, e.Err)
}

func (e *RegionResolutionError) Unwrap() error { return e.Err }

// PartitionSpecError reports a partition column given without its required
// companion options.
type PartitionSpecError struct {
	Column  string
	Missing []string
}

func (e *PartitionSpecError) Error() string {
	return fmt.Sprintf("option %q (%s) also requires %q, %q and %q; missing: %s",
		OptPartitionColumn, e.Column, OptLowerBound, OptUpperBound, OptNumPartitions,
		strings.Join(e.Missing, ", "))
}

// OptionValueError reports an option whose value failed to parse or violated
// its constraint.
type OptionValueError struct {
	Key        string
	Value      string
	Constraint string
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %s", e.Value, e.Key, e.Constraint)
}

// IsolationLevelError reports an unrecognized isolation level literal.
type IsolationLevelError struct {
	Value string
}

func (e *IsolationLevelError) Error() string {
	return fmt.Sprintf("unknown isolation level %q; expected one of NONE, READ_UNCOMMITTED, READ_COMMITTED, REPEATABLE_READ, SERIALIZABLE", e.Value)
}

// StagingLocationError reports a failure to synthesize the default staging
// location. It only invalidates the connection property view, not the rest
// of the resolved configuration.
type StagingLocationError struct {
	Err error
}

func (e *StagingLocationError) Error() string {
	return fmt.Sprintf("unable to derive a default staging location: %v", e.Err)
}

func (e *StagingLocationError) Unwrap() error { return e.Err }
