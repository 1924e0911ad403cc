// Package server exposes a legend registry over HTTP for the chart
// front-end. All routes are read-only and carry the registry fingerprint as
// their ETag.
package server
