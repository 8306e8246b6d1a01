package errors

type MultiError interface {
	Error() string
	Len() int
	ErrorOrNil() error
	WrappedErrors() []error
	Unwrap() []error
	Append(errs ...error)
	AppendNested(err error) NestedError
	AppendWithPrefix(err error, prefix string)
	AppendWithPrefixf(err error, format string, a ...any)
}

type multiErrorGetter interface {
	WrappedErrors() []error
}

type multiError struct {
	errs []error
}

func NewMultiError(errs ...error) MultiError {
	out := &multiError{}
	out.Append(errs...)
	return out
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) Len() int {
	return len(e.errs)
}

func (e *multiError) ErrorOrNil() error {
	if len(e.errs) == 0 {
		return nil
	}
	return e
}

func (e *multiError) WrappedErrors() []error {
	return e.errs
}

func (e *multiError) Unwrap() []error {
	return e.errs
}

// Append adds the errors to the list, nil errors are skipped,
// a MultiError is merged item by item, so the nesting level is preserved.
func (e *multiError) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		switch v := err.(type) { // nolint: errorlint
		case nestedErrorGetter:
			e.errs = append(e.errs, err)
		case multiErrorGetter:
			e.errs = append(e.errs, v.WrappedErrors()...)
		default:
			e.errs = append(e.errs, err)
		}
	}
}

// AppendNested adds the error as a main error of a new nested group,
// sub-errors can be added to the returned NestedError.
func (e *multiError) AppendNested(err error) NestedError {
	nested := NewNestedError(err)
	e.errs = append(e.errs, nested)
	return nested
}

func (e *multiError) AppendWithPrefix(err error, prefix string) {
	e.errs = append(e.errs, PrefixError(err, prefix))
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.errs = append(e.errs, PrefixErrorf(err, format, a...))
}
