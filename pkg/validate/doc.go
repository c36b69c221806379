// Package validate implements the argument checks every diagram builder runs
// before it mutates its item list.
//
// Two checkers exist. The strict checker returns a *domain.Error tagged with
// the failing rule:
//
//	c := validate.New(validate.Strict)
//	if err := c.NotBlank("text", "  "); err != nil {
//	    // errors.Is(err, domain.ErrWhiteSpace)
//	}
//
// The permissive checker accepts everything but nil references, so malformed
// input ends up in the rendered text unchanged.
package validate
