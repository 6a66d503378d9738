package envschema

import (
	"sync"

	"github.com/aretw0/envschema/pkg/schema"
)

// ErrorCollector records failing variables instead of aborting resolution.
// Pass its Handle method to WithErrorHandler. Safe for concurrent use.
type ErrorCollector struct {
	mu        sync.Mutex
	variables []string
}

// NewErrorCollector creates an empty collector.
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Handle records variable and lets resolution continue.
func (c *ErrorCollector) Handle(variable string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variables = append(c.variables, variable)
	return nil
}

// Variables returns the recorded names in the order they failed.
func (c *ErrorCollector) Variables() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.variables...)
}

// Err returns a *schema.AggregateError of ValueErrors, or nil when nothing failed.
func (c *ErrorCollector) Err() error {
	vars := c.Variables()
	if len(vars) == 0 {
		return nil
	}
	errs := make([]error, len(vars))
	for i, v := range vars {
		errs[i] = &schema.ValueError{Variable: v}
	}
	return &schema.AggregateError{Errors: errs}
}
