package slang

// Error is the failure value carried by every panic this library raises.
// Recover it with SafeTry or a plain recover.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrSomeNotTruthy     Error = "Some value must be truthy"
	ErrExpectedSome      Error = "Expected Some, got None"
	ErrExpectedOk        Error = "Expected Ok, got Err"
	ErrFallbackNotTruthy Error = "Fallback must be truthy"
	ErrExpectedElse      Error = "Expected else"
	ErrUnsupportedMatch  Error = "Unsupported match all value type"
	ErrOnlyArrays        Error = "Only arrays allowed when includeValues=false"
	ErrNoneToAtom        Error = "Cannot convert None to Atom"
	ErrNonStringToAtom   Error = "Cannot convert non-string Option to Atom"
	ErrValueIsNone       Error = "Value is None"
	ErrResultConversion  Error = "Cannot convert a Result to any other type"
)

func nonExhaustive(tag string) Error {
	return Error("Non-exhaustive match — missing handler for '" + tag + "'")
}
