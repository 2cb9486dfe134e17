package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Safe for use from the loop goroutine and a test goroutine at once
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}

// AdvanceSteps advances by n equal increments, calling fn after each one
// Drives frame-by-frame scenarios without a real ticker
func (m *MockTimeProvider) AdvanceSteps(n int, d time.Duration, fn func(now time.Time)) {
	for range n {
		fn(m.Advance(d))
	}
}
