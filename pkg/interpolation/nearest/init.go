package nearest

import (
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/registry"
)

const (
	Name     = "nearest"
	Priority = 50
)

func init() {
	registry.RegisterKernelFactory(Priority, KernelFactory{})
}

type KernelFactory struct{}

func (KernelFactory) Name() string {
	return Name
}

func (KernelFactory) NewKernel() interpolation.Kernel {
	return New()
}
