// Package api registers the HTTP routes and houses the request
// handlers. It translates HTTP requests into service calls and service
// outcomes back into JSON responses; no persistence logic lives here.
package api
