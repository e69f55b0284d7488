// Package investapi holds the Go bindings of the broker's v2 protobuf contracts.
// The bindings are generated offline from the schemas under PROTO_INCLUDE_ROOT and are not edited by hand.
package investapi

//go:generate env PROTO_OUT_DIR=. PROTO_INCLUDE_ROOT=../../contracts-repo/src/docs/contracts go run ../../cmd/protogen
