// Package clubsdk is a typed Go client for the clubgate service.
//
// It covers the public registration flow (verify, accept, register), login,
// bootstrap, and the admin invitation endpoints. Admin calls go through a
// Session obtained from Login.
//
// The request/response types in this package double as the service's wire
// contract; the HTTP handlers encode and decode exactly these structs.
package clubsdk
