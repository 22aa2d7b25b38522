// Package netinv is the core library for managing structured attribute data
// describing network devices and for querying large device inventories.
//
// The library is organized around a typed attribute schema and a dynamic
// filtering engine:
//
//   - field: typed, named attribute definitions with ordered validators,
//     composable into nested groups
//   - registry: the immutable catalogue of recognized device attributes,
//     flattenable into dotted field paths
//   - cast: conversion of untyped string input to declared field types,
//     with an explicit type-tag override syntax
//   - host: the in-memory attribute map for one managed device, with
//     dotted-path lookup and type-coercing accessors
//   - extract: bulk, validated reads of several fields from a host with
//     a single success/failure signal
//   - filter: inclusion/exclusion predicates evaluated across collections
//     of heterogeneous host records
//   - inventory: file-based loading and schema validation of host records
//
// # Data Flow
//
// An inventory loader produces raw host records, the registry defines what
// fields mean, the extractor is used by automation tasks to safely pull
// validated values before acting, and the filter engine narrows the host
// collection before tasks run.
//
// # Concurrency
//
// The core performs no I/O and holds no mutable shared state. A Registry is
// immutable after construction and all filtering and extraction calls
// allocate their results freshly, so everything here is safe to invoke
// concurrently without locking.
//
// This root package holds the structured error type shared by the
// subpackages; see errors.go.
package netinv
