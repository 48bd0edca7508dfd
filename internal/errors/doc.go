// Package errors provides structured, actionable error messages for vango-ui.
//
// Every error carries a code (e.g. "E101") that maps to a registered
// template with a category, a short message and an optional hint. Callers
// add context fluently:
//
//	err := errors.New("E203").
//	    WithStatus(resp.StatusCode).
//	    WithDetailf("POST %s", path)
//
//	fmt.Println(err.Format())
//
// Errors unwrap to their cause, so errors.Is and errors.As from the standard
// library keep working. Two VangoErrors with the same code compare equal
// under errors.Is.
package errors
