package period

import "fmt"

// IncompatibleCalendarError indicates an operation mixed instances or
// configurations from different calendars.
type IncompatibleCalendarError struct {
	Have string
	Want string
}

func (e *IncompatibleCalendarError) Error() string {
	return fmt.Sprintf("period: incompatible calendars %q and %q", e.Want, e.Have)
}

// InvalidStepError indicates a zero step passed to Seq.
type InvalidStepError struct{}

func (e *InvalidStepError) Error() string {
	return "period: sequence step must not be zero"
}

// UnknownFormatKindError indicates an unsupported kind passed to Format.
type UnknownFormatKindError struct {
	Kind string
}

func (e *UnknownFormatKindError) Error() string {
	return fmt.Sprintf("period: unknown format kind %q", e.Kind)
}
