// Package logger provides structured logging built on zerolog. It is used
// by the client middleware and the engine adapter's lifecycle component;
// callers with their own zerolog setup can pass a Logger wrapping it.
package logger
