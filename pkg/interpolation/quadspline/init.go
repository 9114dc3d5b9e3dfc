package quadspline

import (
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/registry"
)

const (
	Name     = "quadspline"
	Priority = 100
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
