package validate

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/registry"
)

// Mode selects how builder arguments are checked.
type Mode int

const (
	// Strict rejects invalid arguments with a *domain.Error.
	Strict Mode = iota
	// Permissive skips every check and trusts the caller. Nil references
	// are still rejected since rendering dereferences them.
	Permissive
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Checker validates builder arguments.
// Every method returns nil when the argument is acceptable.
type Checker interface {
	Mode() Mode
	// NotBlank rejects empty or whitespace-only text.
	NotBlank(field, value string) error
	// NotNegative rejects values below zero.
	NotNegative(field string, value float64) error
	// InRange rejects values outside [lo, hi].
	InRange(field string, value, lo, hi float64) error
	// NotEmpty rejects collections of length zero.
	NotEmpty(field string, n int) error
	// Unique rejects a value that is already taken.
	Unique(field, value string, taken bool) error
	// Owned rejects references that were not created by reg's builder.
	// A nil reference is rejected in both modes.
	Owned(reg *registry.Registry, field string, refs ...domain.Ref) error
	// Compatible rejects a jointly invalid combination of options.
	Compatible(ok bool, field, format string, args ...any) error
	// Allowed rejects an operation that is not valid in the current state.
	Allowed(ok bool, field, format string, args ...any) error
}

// New returns the checker for mode.
func New(mode Mode) Checker {
	if mode == Permissive {
		return permissive{}
	}
	return strict{}
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Supported rejects enum values that have no entry in table.
func Supported[T comparable](c Checker, table domain.Symbols[T], field string, v T) error {
	_, ok := table.Lookup(v)
	return c.Allowed(ok, field, "unsupported value %v", v)
}

type strict struct{}

func (strict) Mode() Mode { return Strict }

func (strict) NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewError(domain.CodeWhiteSpace, field, "must not be empty or whitespace")
	}
	return nil
}

func (strict) NotNegative(field string, value float64) error {
	if value < 0 || math.IsNaN(value) {
		return domain.NewError(domain.CodeStrictlyNegative, field, "must not be negative (got %v)", value)
	}
	return nil
}

func (strict) InRange(field string, value, lo, hi float64) error {
	if value < lo || value > hi || math.IsNaN(value) {
		return domain.NewError(domain.CodeOutOfRange, field, "must be between %v and %v (got %v)", lo, hi, value)
	}
	return nil
}

func (strict) NotEmpty(field string, n int) error {
	if n == 0 {
		return domain.NewError(domain.CodeEmptyCollection, field, "must not be empty")
	}
	return nil
}

func (strict) Unique(field, value string, taken bool) error {
	if taken {
		return domain.NewError(domain.CodeDuplicateValue, field, "%q is already defined", value)
	}
	return nil
}

func (strict) Owned(reg *registry.Registry, field string, refs ...domain.Ref) error {
	if err := present(field, refs); err != nil {
		return err
	}
	for _, ref := range refs {
		if !reg.Owns(ref) {
			return domain.NewError(domain.CodeForeignItem, field, "reference was not created by this diagram")
		}
	}
	return nil
}

func (strict) Compatible(ok bool, field, format string, args ...any) error {
	if !ok {
		return domain.NewError(domain.CodeInvalidConfiguration, field, format, args...)
	}
	return nil
}

func (strict) Allowed(ok bool, field, format string, args ...any) error {
	if !ok {
		return domain.NewError(domain.CodeInvalidOperation, field, format, args...)
	}
	return nil
}

type permissive struct{}

func (permissive) Mode() Mode                                      { return Permissive }
func (permissive) NotBlank(string, string) error                   { return nil }
func (permissive) NotNegative(string, float64) error               { return nil }
func (permissive) InRange(string, float64, float64, float64) error { return nil }
func (permissive) NotEmpty(string, int) error                      { return nil }
func (permissive) Unique(string, string, bool) error               { return nil }
func (permissive) Compatible(bool, string, string, ...any) error   { return nil }
func (permissive) Allowed(bool, string, string, ...any) error      { return nil }

func (permissive) Owned(_ *registry.Registry, field string, refs ...domain.Ref) error {
	return present(field, refs)
}

// present rejects nil references, including typed nil pointers.
func present(field string, refs []domain.Ref) error {
	for _, ref := range refs {
		if ref == nil {
			return domain.NewError(domain.CodeInvalidOperation, field, "reference is nil")
		}
		if v := reflect.ValueOf(ref); v.Kind() == reflect.Pointer && v.IsNil() {
			return domain.NewError(domain.CodeInvalidOperation, field, "reference is nil")
		}
	}
	return nil
}
