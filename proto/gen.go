// Package microgrid_pb contains the generated gRPC bindings for the
// Microgrid control service. Run `go generate ./proto` after editing
// microgrid.proto (requires protoc with the go and go-grpc plugins).
package microgrid_pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative microgrid.proto
