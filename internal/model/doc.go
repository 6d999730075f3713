// Package model defines the data types shared across citynews.
//
// The types mirror the JSON contract of the news backend:
//
//   - [City]: a city entry returned by the directory endpoint
//   - [Article]: a news article returned by the search endpoint
//   - [Envelope]: the standard wrapper around every backend reply
//
// [Config] holds the client configuration. Loading and saving it is the job
// of the config package; this package only defines the shape and defaults.
//
// All backend types are treated as immutable once decoded. Flows replace them
// wholesale and never merge or mutate fields.
package model
