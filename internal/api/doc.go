// Package api exposes the timer's HTTP control surface.
//
// Separation of Concerns
//
// The api package defines public JSON types (decoupled from core), maps core
// snapshots to JSON, and hosts an HTTP server with minimal middleware. The
// core package remains unaware of HTTP or JSON.
//
// Endpoint Families
//
// Two families map onto the same seven engine operations and must stay
// behaviorally identical:
//
//   - /api/timer/{set,add,subtract,start,stop,reset,status} takes minutes
//     and seconds as query parameters.
//   - /api/{set,add,remove,start,stop,reset,status} is the legacy surface
//     taking the same fields in a JSON body ("remove" means subtract).
//
// Every success response is the envelope {success, status, remainingSeconds,
// display}; failures carry {success:false, error} with 400 for bad input and
// 405 for a wrong method. The engine never learns which family called it.
//
// Server
//
// NewServer wires handlers onto a ServeMux behind an httpx chain (panic
// recovery, request ids, body limit, access log) and configures timeouts.
// Start() runs ListenAndServe in a goroutine; Stop() performs graceful
// shutdown bounded by ShutdownTimeout.
package api
