/*
Package errors implements the error taxonomy of the application.

Reuse as many errors from this package as possible and define custom package
errors only when necessary. Extensions register their own root errors with
Register(code, description). Code stands for the ABCI error code, which allows
to distinguish types of errors on the client side and act accordingly.

Create instances with ErrXyz.New("...") or errors.Wrap(err, "...") at the
point of failure so that a stack trace is attached. Only the innermost wrap
records the stack trace.

Once you have an error, use fmt formatting to get more context
	%s is just the error message
	%+v is the message followed by the stack trace
*/
package errors
