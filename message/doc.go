// Package message defines the engine-agnostic HTTP message model: an
// ordered multi-value Header, a Request with a lazily-readable body, and a
// buffered Response. Engine adapters translate these to and from their
// native representations; callers never see a native type.
package message
