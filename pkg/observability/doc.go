/*
Package observability exports walk metrics to Prometheus.

Metrics are fed through domain.LifecycleHooks, so any solver or engine that
accepts hooks can be instrumented without depending on Prometheus itself.
*/
package observability
