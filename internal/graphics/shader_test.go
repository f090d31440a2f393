package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLocator(known map[string]int32) func(string) int32 {
	return func(name string) int32 {
		if loc, ok := known[name]; ok {
			return loc
		}
		return -1
	}
}

func TestResolveUniforms(t *testing.T) {
	locate := fakeLocator(map[string]int32{"m_proj": 0, "m_view": 1, "m_model": 2})

	table, err := resolveUniforms([]string{"m_proj", "m_view", "m_model"}, locate)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, int32(1), table["m_view"].Location())
	assert.Equal(t, "m_model", table["m_model"].Name())
}

func TestResolveUniformsRejectsUnknown(t *testing.T) {
	locate := fakeLocator(map[string]int32{"m_proj": 0})

	_, err := resolveUniforms([]string{"m_proj", "m_veiw", "u_tex"}, locate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "m_veiw")
	assert.Contains(t, err.Error(), "u_tex")
}

func TestProgramUniformLookup(t *testing.T) {
	table, err := resolveUniforms([]string{"m_model"}, fakeLocator(map[string]int32{"m_model": 4}))
	require.NoError(t, err)
	p := &Program{Name: "default", uniforms: table}

	u, err := p.Uniform("m_model")
	require.NoError(t, err)
	assert.Equal(t, int32(4), u.Location())

	_, err = p.Uniform("m_view")
	assert.Error(t, err)
}
