// Package observe receives stage events from the navigation pipeline.
//
// The pipeline reports one Event per stage (index, graph, search, enhance,
// directions) and a final route event per query. Observers never influence
// the outcome of a query; Nop discards everything.
//
// Two observers are provided: NewSlog writes structured log records through
// log/slog, and NewPrometheus exports counters and histograms through a
// caller-supplied prometheus.Registerer. Multi fans an event out to several
// observers.
package observe
