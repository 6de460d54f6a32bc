// Package middleware groups the Fiber middleware of the device sync server.
//
// # Components
//
//   - auth: Rejects requests without the configured API key, taken from the
//     X-API-Key header or a Bearer token.
//   - rayid: Tags every request with a Ray ID, reusing an incoming X-Ray-ID
//     header, and exposes it to handlers and logs.
//
// The server registers rayid first and auth after the public documentation
// and metrics endpoints.
package middleware
