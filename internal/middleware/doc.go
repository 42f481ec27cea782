// Package middleware provides cross-cutting HTTP request handling:
// structured request logging and prometheus instrumentation. Both are
// registered globally on the router.
package middleware
