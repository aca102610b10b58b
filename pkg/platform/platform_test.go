package platform_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-crossenv/pkg/platform"
)

func TestByName(t *testing.T) {
	native := runtime.GOOS == "windows"

	tests := []struct {
		name string
		want bool
	}{
		{name: "", want: native},
		{name: "auto", want: native},
		{name: "windows", want: true},
		{name: "Windows", want: true},
		{name: " unix ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, err := platform.ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, probe())
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := platform.ByName("plan9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan9")
}

func TestFixed(t *testing.T) {
	assert.True(t, platform.Fixed(true)())
	assert.False(t, platform.Fixed(false)())
}
