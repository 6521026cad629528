// Package backend is the HTTP client for the practice-question service.
//
// Every call is a single request/response exchange: no retries, no
// pagination awareness. Responses are decoded loosely and handed to package
// normalize, because the service does not commit to stable envelope shapes.
// Non-2xx responses surface the server's message when one exists, falling
// back to the raw body text and finally to "HTTP <status>"; mutating calls
// additionally embed the verb and URL for diagnosability. A 404 on the
// per-id progress lookup is a defined not-found outcome, not an error.
package backend
