// Package memory provides in-process implementations of the store
// interfaces. State lives only as long as the store value.
package memory
