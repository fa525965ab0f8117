package rpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/akcpetia/NFT-collection-project/mint"
)

// mapErr translates mint sentinels into status codes for the wire.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mint.ErrInsufficientFee):
		return status.Error(codes.ResourceExhausted, mint.ErrInsufficientFee.Error())
	case errors.Is(err, mint.ErrUnknownRecord):
		return status.Error(codes.NotFound, mint.ErrUnknownRecord.Error())
	case errors.Is(err, mint.ErrUnknownRequest):
		return status.Error(codes.NotFound, mint.ErrUnknownRequest.Error())
	case errors.Is(err, mint.ErrAlreadyFinalized):
		return status.Error(codes.AlreadyExists, mint.ErrAlreadyFinalized.Error())
	case errors.Is(err, mint.ErrSeedNotReady):
		return status.Error(codes.FailedPrecondition, mint.ErrSeedNotReady.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// mapRPC translates status codes back into mint sentinels on the client.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	// The message disambiguates NotFound, which covers two sentinels.
	switch st.Message() {
	case mint.ErrInsufficientFee.Error():
		return mint.ErrInsufficientFee
	case mint.ErrUnknownRecord.Error():
		return mint.ErrUnknownRecord
	case mint.ErrUnknownRequest.Error():
		return mint.ErrUnknownRequest
	case mint.ErrAlreadyFinalized.Error():
		return mint.ErrAlreadyFinalized
	case mint.ErrSeedNotReady.Error():
		return mint.ErrSeedNotReady
	}
	switch st.Code() {
	case codes.ResourceExhausted:
		return mint.ErrInsufficientFee
	case codes.AlreadyExists:
		return mint.ErrAlreadyFinalized
	case codes.FailedPrecondition:
		return mint.ErrSeedNotReady
	default:
		return err
	}
}
