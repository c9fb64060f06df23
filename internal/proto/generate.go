// Package proto holds the generated DisclosureService messages and stubs.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative disclosure.proto
