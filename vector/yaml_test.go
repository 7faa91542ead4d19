package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/libm/vector"
)

// TestYAMLEncode checks the flow-sequence encoding.
func TestYAMLEncode(t *testing.T) {
	out, err := yaml.Marshal(map[string]*vector.Vector{"v": vector.MustNew(2, -3, 1.5)})
	require.NoError(t, err)
	require.Equal(t, "v: [2, -3, 1.5]\n", string(out))
}

// TestYAMLDecode checks decoding into a vector field.
func TestYAMLDecode(t *testing.T) {
	var doc struct {
		V vector.Vector `yaml:"v"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("v: [1, 4.6, 6.123, 4.4]\n"), &doc))
	require.True(t, vector.Equal(vector.MustNew(1, 4.6, 6.123, 4.4), &doc.V))
}

// TestYAMLDecodeErrors ensures empty and malformed sequences are rejected.
func TestYAMLDecodeErrors(t *testing.T) {
	var v vector.Vector
	err := yaml.Unmarshal([]byte("[]"), &v)
	require.ErrorIs(t, err, vector.ErrEmptyLiteral)

	err = yaml.Unmarshal([]byte("[a, b]"), &v)
	require.Error(t, err)
	require.True(t, v.IsUndefined())
}
