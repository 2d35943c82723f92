// Package api implements the HTTP transport for the TurboDocx API: JSON
// and multipart request encoding, raw binary downloads, authentication
// headers, response envelope unwrapping, and error mapping.
package api
