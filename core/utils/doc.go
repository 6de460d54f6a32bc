// Package utils provides small conversion helpers shared by the HTTP handlers and the CLI,
// such as parsing device ID lists from JSON request bodies.
package utils
