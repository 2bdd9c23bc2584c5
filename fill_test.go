package argload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filledConfig struct {
	Verbose bool     `settings:"verbose"`
	Port    int      // matches long flag "port" by field name
	Hosts   []string `settings:"hosts,split=:"`
	Skipped string   `settings:"-"`
	Unbound string   // matches no declared option
}

func TestFill(t *testing.T) {
	loader := newTestLoader(t)
	require.NoError(t, loader.ApplyArgumentVector([]string{"-v", "true", "--hosts", "a:b:c"}), "apply")

	var conf filledConfig
	require.NoError(t, loader.Fill(&conf), "fill")
	assert.True(t, conf.Verbose, "verbose")
	assert.Equal(t, 8080, conf.Port, "port from default")
	assert.Equal(t, []string{"a", "b", "c"}, conf.Hosts, "hosts split")
	assert.Equal(t, "", conf.Skipped, "skipped")
	assert.Equal(t, "", conf.Unbound, "unbound")
}

func TestFillBadModel(t *testing.T) {
	loader := newTestLoader(t)
	assert.Error(t, loader.Fill(nil), "nil model")
	assert.NotPanics(t, func() {
		assert.Error(t, loader.Fill(filledConfig{}), "non-pointer model")
	}, "non-pointer model must be rejected, not panic")
	assert.Error(t, loader.Fill((*filledConfig)(nil)), "typed nil pointer")
	var s string
	assert.Error(t, loader.Fill(&s), "pointer to non-struct")
}

func TestFillBadValue(t *testing.T) {
	loader := newTestLoader(t)
	require.NoError(t, loader.ApplyArgumentVector([]string{"-p", "not-a-number"}), "apply")
	var conf filledConfig
	assert.Error(t, loader.Fill(&conf), "unparseable int")
}
