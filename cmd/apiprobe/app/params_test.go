package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiprobe/apiprobe/cmd/apiprobe/client"
)

func TestParseParamsCoercion(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  any
	}{
		{"bool true", "a=true", true},
		{"bool false upper", "a=FALSE", false},
		{"bool mixed case", "a=True", true},
		{"integer", "a=42", int64(42)},
		{"zero", "a=0", int64(0)},
		{"float", "a=3.14", 3.14},
		{"float leading dot", "a=.5", 0.5},
		{"float trailing dot", "a=1.", 1.0},
		{"string", "a=hello", "hello"},
		{"negative stays string", "a=-1", "-1"},
		{"two dots stays string", "a=1.2.3", "1.2.3"},
		{"lone dot stays string", "a=.", "."},
		{"empty value stays string", "a=", ""},
		{"value with equals", "a=b=c", "b=c"},
		{"whitespace trimmed", " a = 42 ", int64(42)},
		{"int64 overflow stays string", "a=99999999999999999999", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParams([]string{tt.token})
			require.NoError(t, err)
			assert.Equal(t, client.Params{"a": tt.want}, got)
		})
	}
}

func TestParseParamsErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"missing equals", "novalue"},
		{"empty key", "=v"},
		{"whitespace key", " =v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams([]string{tt.token})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parameter")
		})
	}
}

func TestParseParamsDuplicateKeysLastWins(t *testing.T) {
	got, err := ParseParams([]string{"a=1", "b=x", "a=2"})
	require.NoError(t, err)
	assert.Equal(t, client.Params{"a": int64(2), "b": "x"}, got)
}

func TestParseParamsEmptyInput(t *testing.T) {
	got, err := ParseParams(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
