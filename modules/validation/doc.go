// Package validation exposes the portal's form checks over HTTP.
//
// Every endpoint accepts JSON, urlencoded or multipart bodies and answers
// with the handler package's JSON envelope:
//
//	POST /auth/{mode}            login | register
//	POST /profile                full profile
//	GET  /profile/steps          wizard steps and their fields
//	POST /profile/steps/{step}   personal | contact | employment
//	POST /lookup/{kind}          authorize | verify
//	POST /document               multipart field "document"
//
// A valid submission returns 200. Field failures return 422 with code
// "validation_error" and the messages under error.details. Unknown modes,
// steps and lookup kinds return 404.
//
// Validators are built per request; nothing is shared between requests.
package validation
