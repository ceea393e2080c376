// Package client is the remote data gateway of the usuarios CLI.
//
// # Overview
//
// The Client interface has one method per backend endpoint:
//
//	GET    /usuarios          ListUsers
//	POST   /usuarios          CreateUser (no id in body)
//	PUT    /usuarios/{id}     UpdateUser (body id == path id)
//	DELETE /usuarios/{id}     DeleteUser
//	GET    /departamentos     ListDepartments
//	GET    /cargos            ListPositions
//
// HTTPClient implements it with net/http and JSON bodies. It is configured
// entirely through Options (base URL, headers, timeout, payload encoding) so
// tests can point it at an httptest server.
//
// # Error Handling
//
// Every failure is an *APIError whose Kind is one of the common sentinels:
// common.ErrTransport (network), common.ErrServer (5xx, unexpected 4xx on
// reads, malformed bodies), common.ErrValidation (4xx on writes, message
// taken from the response body) and common.ErrNotFound (404). Match with
// errors.Is.
package client
