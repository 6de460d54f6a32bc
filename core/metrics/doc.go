// Package metrics exposes Prometheus metrics for the synchronization jobs.
//
// Metrics are created against an explicit registry so tests and multiple servers
// do not collide on the default one.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	m.AddCreated("interface", 2)
//	http.Handle("/metrics", metrics.Handler(reg))
package metrics
