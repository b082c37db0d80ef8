// Package api holds the protobuf contract between the CRM services.
//
// # Layout
//
//   - proto/ contains the protobuf sources, one package per backend:
//     crm/v1 (campaign orchestration), stats/v1 (user statistics),
//     metadata/v1 (content metadata), notification/v1 (send sink).
//   - gen/go/ receives the generated Go bindings and is not committed.
//
// # Generation
//
// Bindings are regenerated with protoc and the Go plugins:
//
//	protoc -I api/proto \
//	  --go_out=api/gen/go --go_opt=module=github.com/kailanyue/crm/api/gen/go \
//	  --go-grpc_out=api/gen/go --go-grpc_opt=module=github.com/kailanyue/crm/api/gen/go \
//	  api/proto/*/v1/*.proto
//
// Services own their server implementations under
// internal/services/<name>/api/grpc; this package owns only the wire contract.
package api
