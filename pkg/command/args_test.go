package command

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3d91ll/irpl/pkg/errors"
)

func TestValidate_Types(t *testing.T) {
	params := []Param{
		Arg("s", String),
		Arg("i", Int),
		Arg("f", Float),
		Anon(Float32),
		Arg("p", Path),
		Arg("ip", IP),
	}
	args, err := Validate(params, []string{"hello", "-42", "2.5", "1.25", "/no/such/file", "::1"})
	require.NoError(t, err)

	assert.Equal(t, 6, args.Len())
	assert.Equal(t, "hello", args.String(0))
	assert.Equal(t, int32(-42), args.Int(1))
	assert.Equal(t, 2.5, args.Float(2))
	assert.Equal(t, float32(1.25), args.Float32(3))
	assert.Equal(t, "/no/such/file", args.Path(4))
	assert.Equal(t, netip.MustParseAddr("::1"), args.IP(5))
	assert.Equal(t, "-42", args.Raw(1))
}

func TestValidate_Arity(t *testing.T) {
	params := []Param{Arg("X", Int), Arg("Y", Int)}

	for _, tokens := range [][]string{nil, {"1"}, {"1", "2", "3"}} {
		_, err := Validate(params, tokens)
		require.Error(t, err, "tokens %v", tokens)
		assert.True(t, errors.IsCode(err, errors.ErrArgCount))
		assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	}

	args, err := Validate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, args.Len())
}

func TestValidate_InvalidTokens(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		token    string
		expected string
	}{
		{"int from word", Int, "abc", "int"},
		{"int from float", Int, "1.5", "int"},
		{"int overflow", Int, "2147483648", "int"},
		{"float from word", Float, "one", "float"},
		{"float32 from word", Float32, "x", "float32"},
		{"ip garbage", IP, "999.1.1.1", "ip"},
		{"ip hostname", IP, "localhost", "ip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate([]Param{Arg("v", tt.typ)}, []string{tt.token})
			require.Error(t, err)

			ie, ok := errors.AsIrplError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrArgInvalid, ie.Code)
			assert.Equal(t, tt.token, ie.Context[errors.ContextToken])
			assert.Equal(t, tt.expected, ie.Context[errors.ContextExpected])
			assert.Contains(t, ie.Message, tt.token)
		})
	}
}

func TestValidate_AnonymousStillRequired(t *testing.T) {
	_, err := Validate([]Param{Anon(Float32)}, nil)
	assert.True(t, errors.IsCode(err, errors.ErrArgCount))
}

func TestValidate_IntBoundaries(t *testing.T) {
	args, err := Validate([]Param{Anon(Int), Anon(Int)}, []string{"2147483647", "-2147483648"})
	require.NoError(t, err)
	assert.Equal(t, int32(2147483647), args.Int(0))
	assert.Equal(t, int32(-2147483648), args.Int(1))
}

func TestSignature(t *testing.T) {
	spec := Spec{Name: "add", Params: []Param{Arg("X", Int), Arg("Y", Int)}}
	assert.Equal(t, "<X:int> <Y:int>", spec.Signature())
	assert.Equal(t, "add <X:int> <Y:int>", spec.Usage())

	say := Spec{Name: "say", Params: []Param{Anon(Float32)}}
	assert.Equal(t, "say <float32>", say.Usage())

	ok := Spec{Name: "ok"}
	assert.Equal(t, "ok", ok.Usage())
	assert.Equal(t, "", ok.Signature())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "unknown", Type(99).String())
}
