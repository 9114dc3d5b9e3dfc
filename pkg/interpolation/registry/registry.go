package registry

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
)

type KernelFactory interface {
	// Name is the short identifier used to select the kernel (e.g. from a flag).
	Name() string
	NewKernel() interpolation.Kernel
}

type kernelFactoryWithPriority struct {
	Priority int
	KernelFactory
}

var (
	kernelFactoryRegistryLocker sync.Mutex
	kernelFactoryRegistry       = map[reflect.Type]kernelFactoryWithPriority{}
)

func RegisterKernelFactory(
	priority int,
	kernelFactory KernelFactory,
) {
	t := reflect.ValueOf(kernelFactory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	kernelFactoryRegistryLocker.Lock()
	defer kernelFactoryRegistryLocker.Unlock()
	if _, ok := kernelFactoryRegistry[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of Kernel of type %v", t))
	}
	for _, registered := range kernelFactoryRegistry {
		if strings.EqualFold(registered.Name(), kernelFactory.Name()) {
			panic(fmt.Errorf("there is already registered a factory of Kernel with name %q (%T)", kernelFactory.Name(), registered.KernelFactory))
		}
	}
	kernelFactoryRegistry[t] = kernelFactoryWithPriority{
		Priority:      priority,
		KernelFactory: kernelFactory,
	}
}

// KernelFactories returns the registered factories, the highest priority first.
func KernelFactories() []KernelFactory {
	kernelFactoryRegistryLocker.Lock()
	var factoriesWithPriorities []kernelFactoryWithPriority
	for _, factory := range kernelFactoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	kernelFactoryRegistryLocker.Unlock()

	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		if factoriesWithPriorities[i].Priority != factoriesWithPriorities[j].Priority {
			return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
		}
		return factoriesWithPriorities[i].Name() < factoriesWithPriorities[j].Name()
	})

	var factories []KernelFactory
	for _, factory := range factoriesWithPriorities {
		factories = append(factories, factory.KernelFactory)
	}

	return factories
}

// Names returns the names of the registered kernels, the highest priority first.
func Names() []string {
	var names []string
	for _, factory := range KernelFactories() {
		names = append(names, factory.Name())
	}
	return names
}

// NewKernel instantiates the kernel registered under the given name
// (case-insensitive). An empty name selects the highest priority kernel.
func NewKernel(name string) (interpolation.Kernel, error) {
	factories := KernelFactories()
	if len(factories) == 0 {
		return nil, fmt.Errorf("no interpolation kernels are registered")
	}
	if name == "" {
		return factories[0].NewKernel(), nil
	}
	for _, factory := range factories {
		if strings.EqualFold(factory.Name(), name) {
			return factory.NewKernel(), nil
		}
	}
	return nil, fmt.Errorf("unknown interpolation kernel %q, known kernels: %s", name, strings.Join(Names(), ", "))
}
