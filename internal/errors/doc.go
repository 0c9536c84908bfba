// Package errors provides the structured error type used across garden-api.
//
// Errors carry a Code, a caller-facing message, an optional cause and metadata.
// The codes mirror gRPC status codes so handlers can convert with ToGRPCError.
//
// # Garden conventions
//
// The engine packages never return errors for expected game conditions. A full
// grid, an occupied cell, a missing sprite or a short backpack stack are reported
// as a false/zero result. Errors are reserved for the boundaries:
//
//   - InvalidArgument: a level, category, coordinate or id failed validation
//   - NotFound: unknown session or no stored balance
//   - FailedPrecondition: a paid action the balance cannot cover
//   - Internal/Unavailable: storage or transport failures
//
// Validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("session_id", input.SessionID, vb)
//	errors.ValidateRange("level", input.Level, 0, garden.MaxTreeLevel, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Metadata survives the gRPC hop as a google.protobuf.Struct detail:
//
//	return nil, errors.ToGRPCError(err)          // handler
//	err = errors.FromGRPCError(err)              // client
//	balance := errors.GetMeta(err)["balance"]
package errors
