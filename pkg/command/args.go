package command

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/r3d91ll/irpl/pkg/errors"
)

// Args holds validated argument values in parameter order.
type Args struct {
	raw    []string
	values []any
}

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.values) }

// Raw returns the token the i-th argument was parsed from.
func (a Args) Raw(i int) string { return a.raw[i] }

// String returns the i-th argument of type String.
func (a Args) String(i int) string { return a.values[i].(string) }

// Path returns the i-th argument of type Path.
func (a Args) Path(i int) string { return a.values[i].(string) }

// Int returns the i-th argument of type Int.
func (a Args) Int(i int) int32 { return a.values[i].(int32) }

// Float returns the i-th argument of type Float.
func (a Args) Float(i int) float64 { return a.values[i].(float64) }

// Float32 returns the i-th argument of type Float32.
func (a Args) Float32(i int) float32 { return a.values[i].(float32) }

// IP returns the i-th argument of type IP.
func (a Args) IP(i int) netip.Addr { return a.values[i].(netip.Addr) }

// Validate converts tokens into typed values according to params.
// Arity mismatches and unparseable tokens are reported as validation errors
// carrying the offending token and the expected type in their context.
func Validate(params []Param, tokens []string) (Args, error) {
	if len(tokens) != len(params) {
		return Args{}, errors.AttachSuggestions(
			errors.Validationf(errors.ErrArgCount,
				"wrong number of arguments: expected %d, got %d", len(params), len(tokens)).
				WithContext(errors.ContextExpected, strconv.Itoa(len(params))).
				WithContext(errors.ContextActual, strconv.Itoa(len(tokens))))
	}

	args := Args{
		raw:    tokens,
		values: make([]any, len(params)),
	}
	for i, p := range params {
		v, err := parse(p.Type, tokens[i])
		if err != nil {
			return Args{}, errors.AttachSuggestions(
				errors.Validationf(errors.ErrArgInvalid,
					"argument %d: cannot parse %q as %s", i+1, tokens[i], p.Type).
					WithContext(errors.ContextToken, tokens[i]).
					WithContext(errors.ContextPosition, strconv.Itoa(i+1)).
					WithContext(errors.ContextExpected, p.Type.String()).
					WithCause(err))
		}
		args.values[i] = v
	}
	return args, nil
}

func parse(t Type, token string) (any, error) {
	switch t {
	case String, Path:
		return token, nil
	case Int:
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, err
		}
		return int32(n), nil
	case Float:
		return strconv.ParseFloat(token, 64)
	case Float32:
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case IP:
		return netip.ParseAddr(token)
	default:
		return nil, fmt.Errorf("unsupported parameter type %d", int(t))
	}
}
