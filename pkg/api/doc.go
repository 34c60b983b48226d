// Package api serves widget placement over HTTP.
//
// # Endpoints
//
//	POST /v1/placements      find a position for a new widget
//	GET  /v1/catalog         list widget definitions
//	GET  /v1/catalog/{type}  show one widget definition
//	GET  /healthz            liveness and version
//
// A placement request carries the current widgets and either an explicit
// size or a catalog widget type:
//
//	{
//	  "widgets": [{"id": "a", "position": {"x": 0, "y": 0, "w": 6, "h": 2}}],
//	  "type": "chart",
//	  "size": {"w": 6, "h": 2},
//	  "columns": 12
//	}
//
// When both type and size are given, the size is clamped to the type's
// bounds. Columns is optional and overrides the server's grid width for one
// request. The response is a [placement.Result]. Impossible sizes are not
// errors; they produce a fallback position like the library does.
//
// Errors use a JSON envelope with a code from [errors]:
//
//	{"error": {"code": "UNKNOWN_WIDGET", "message": "unknown widget type \"map\""}}
//
// Every response carries an X-Request-ID header, taken from the request when
// present and generated otherwise.
package api
