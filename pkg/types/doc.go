// Package types defines the Product record, the Store interface, the backend
// Config, and standard errors for the shelf inventory system.
package types
