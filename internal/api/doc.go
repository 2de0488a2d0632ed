// Package api implements the HTTP handlers for the task endpoints, the
// request/response models with their validation tags, and the mapping from
// service errors to HTTP status codes.
package api
