// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs request start/completion with duration
  - CORS: allows cross-origin requests from overlay pages

# JSON Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a standardized error response
  - ParseJSONBody: decodes a request body into a struct
*/
package middleware
