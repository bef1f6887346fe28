// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-qualified ServeMux patterns:

	POST /poll/start
	POST /poll/vote
	POST /poll/finish
	POST /leaderboard/increment
	GET  /leaderboard/top
	POST /chat/message
	GET  /chat/ws
	GET  /health

All JSON routes are wrapped with request logging; the websocket route is
not, since a connection would log as a never-completing request.
*/
package router
