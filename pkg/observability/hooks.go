package observability

import (
	"log/slog"

	"github.com/aretw0/envschema/pkg/domain"
)

// LogHooks logs every event on logger. Values are never logged.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(e *domain.VariableEvent) {
			logger.Debug("variable resolved", "variable", e.Variable, "path", e.Path)
		},
		OnFailure: func(e *domain.VariableEvent) {
			logger.Warn("variable missing or invalid", "variable", e.Variable, "path", e.Path, "override", e.Override)
		},
	}
}

// Combine returns hooks calling each of hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(e *domain.VariableEvent) {
			for _, h := range hooks {
				if h.OnResolve != nil {
					h.OnResolve(e)
				}
			}
		},
		OnFailure: func(e *domain.VariableEvent) {
			for _, h := range hooks {
				if h.OnFailure != nil {
					h.OnFailure(e)
				}
			}
		},
	}
}
