package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/nearest"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/quadspline"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/registry"
)

type renamedNearestFactory struct{}

func (renamedNearestFactory) Name() string {
	return "NEAREST"
}

func (renamedNearestFactory) NewKernel() interpolation.Kernel {
	return nearest.New()
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{quadspline.Name, nearest.Name}, registry.Names())
}

func TestNewKernel(t *testing.T) {
	t.Run("by_name", func(t *testing.T) {
		k, err := registry.NewKernel("nearest")
		require.NoError(t, err)
		assert.IsType(t, &nearest.Kernel{}, k)

		k, err = registry.NewKernel("QuadSpline")
		require.NoError(t, err)
		assert.IsType(t, &quadspline.Kernel{}, k)
	})

	t.Run("default", func(t *testing.T) {
		k, err := registry.NewKernel("")
		require.NoError(t, err)
		assert.Equal(t, quadspline.Method, k.Method())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := registry.NewKernel("cubic")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cubic")
		assert.Contains(t, err.Error(), nearest.Name)
	})
}

func TestRegisterKernelFactory_Duplicate(t *testing.T) {
	require.Panics(t, func() {
		registry.RegisterKernelFactory(1, nearest.KernelFactory{})
	})
	require.Panics(t, func() {
		registry.RegisterKernelFactory(1, renamedNearestFactory{})
	})
	require.Len(t, registry.KernelFactories(), 2)
}
