// Package http implements the HTTP transport layer of the fit-journal API.
//
// Requests pass through an ordered list of stages (see [Handler.Pipeline]):
// tracing, access logging, compression, optional rate limiting, the CORS
// policy, security headers, static assets and JSON body parsing. They are then
// dispatched by a chi router to the public users router or, through the
// authentication gate, to one of the journal routers. Handler failures end in
// a terminal error renderer whose output depends on the environment mode.
package http
