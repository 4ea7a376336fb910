// Package schema defines the wire types of the ReWear admin REST API.
//
// Every successful response is wrapped in an envelope, `{"data": ...}`; list
// endpoints wrap a paginated page inside it.
package schema
