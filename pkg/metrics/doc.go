// Package metrics exposes Prometheus counters for the portal on a private
// registry.
//
//	m := metrics.New()
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//
// Services receive *Metrics through small recorder interfaces of their own,
// so they can be tested without Prometheus.
package metrics
