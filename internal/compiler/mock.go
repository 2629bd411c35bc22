package compiler

import "sync"

// MockCompiler is a scriptable Compiler for testing. Registered hooks are
// recorded and can be fired with Invalidate and Complete.
type MockCompiler struct {
	mu          sync.Mutex
	invalidates []func()
	dones       []func(Result)
}

// OnInvalidate implements Compiler.
func (m *MockCompiler) OnInvalidate(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidates = append(m.invalidates, fn)
}

// OnDone implements Compiler.
func (m *MockCompiler) OnDone(fn func(Result)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dones = append(m.dones, fn)
}

// Invalidate fires all registered invalidation hooks.
func (m *MockCompiler) Invalidate() {
	m.mu.Lock()
	hooks := append([]func(){}, m.invalidates...)
	m.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// Complete fires all registered completion hooks with the given result.
func (m *MockCompiler) Complete(res Result) {
	m.mu.Lock()
	hooks := append([]func(Result){}, m.dones...)
	m.mu.Unlock()
	for _, fn := range hooks {
		fn(res)
	}
}

// HookCount returns the number of registered invalidation and completion
// hooks, for asserting registration happened (or did not).
func (m *MockCompiler) HookCount() (invalidates, dones int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invalidates), len(m.dones)
}
