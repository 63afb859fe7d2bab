// Package module resolves module port sets, either from a module value or by name
package module

import (
	"reflect"
	"sync"
)

// Module is the part of a modkit module the lookups need
type Module interface {
	Ports() any
	Name() string
}

// PortsOf returns the port of type T exposed by m, either the bundle itself
// or one exported field of a struct bundle (pointers to structs included)
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics naming the module when T is not exposed
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: " + m.Name() + " exposes no port of the requested type")
	}
	return v
}

// process wide port sets keyed by module name, filled by api.Mount
var (
	mu       sync.RWMutex
	registry = map[string]any{}
)

// Register stores ports under name, replacing any earlier set
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = ports
}

// PortsAs returns the set registered under name when it is a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := registry[name].(T)
	return v, ok
}

// Reset forgets every registration
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]any{}
}
