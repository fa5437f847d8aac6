// Package store provides abstractions and implementations for data
// persistence. It defines the interfaces the rest of the application
// depends on; concrete database-backed implementations live under
// internal/platform.
package store
