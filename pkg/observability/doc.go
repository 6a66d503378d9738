/*
Package observability turns resolver lifecycle events into metrics and logs.

Metrics are Prometheus collectors fed by LifecycleHooks; LogHooks writes one
structured record per variable. Combine fans a single event out to several
hook sets:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.Combine(m.Hooks(), observability.LogHooks(logger))
	cfg, err := envschema.Resolve(s, envschema.WithLifecycleHooks(hooks))
*/
package observability
