package rpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/mint"
	"github.com/akcpetia/NFT-collection-project/provenance"
)

// PendingDeliverer drains waiting randomness requests; see
// coordinator.DeliverPending.
type PendingDeliverer interface {
	DeliverPending() (int, error)
}

// ReceiptSigner countersigns a finalized record's identifier and content ID;
// provenance.Signer implements it.
type ReceiptSigner interface {
	Countersign(recordID uint64, cid string) ([]provenance.Receipt, error)
}

// Server exposes a mint.Minter over the Mint gRPC service.
//
// When AutoFulfill is set, every accepted Request is immediately followed by
// a delivery sweep, collapsing the asynchronous oracle round trip for local
// deployments. Leave it nil to drive fulfillment through Fulfill.
//
// When Receipts is set, every successful Finish is countersigned and the
// receipts are logged. The record is already finalized by then, so a signing
// failure is logged but does not fail the call.
type Server struct {
	UnimplementedMintServer
	Minter      *mint.Minter
	AutoFulfill PendingDeliverer
	Receipts    ReceiptSigner
	Logger      *zerolog.Logger // nil discards
}

func (s *Server) log() zerolog.Logger {
	if s.Logger == nil {
		return zerolog.Nop()
	}
	return *s.Logger
}

func (s *Server) Request(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Minter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing minter")
	}
	caller := in.GetValue()
	if caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}
	token, err := s.Minter.Request(caller)
	if err != nil {
		return nil, mapErr(err)
	}
	if s.AutoFulfill != nil {
		if _, err := s.AutoFulfill.DeliverPending(); err != nil {
			return nil, mapErr(err)
		}
	}
	return wrapperspb.String(string(token)), nil
}

func (s *Server) Fulfill(ctx context.Context, in *structpb.Struct) (*wrapperspb.UInt64Value, error) {
	_ = ctx
	if s == nil || s.Minter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing minter")
	}
	token := in.GetFields()["token"].GetStringValue()
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}
	value, err := mint.SeedFromHex(in.GetFields()["value"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "value must be 64 hex characters")
	}
	id, err := s.Minter.Fulfill(mint.Token(token), value)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.UInt64(id), nil
}

func (s *Server) Finish(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Minter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing minter")
	}
	fields := in.GetFields()
	idField, ok := fields["id"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id := uint64(idField.GetNumberValue())

	list := fields["palette"].GetListValue().GetValues()
	var pal curve.Palette
	if len(list) != len(pal) {
		return nil, status.Errorf(codes.InvalidArgument, "palette must have exactly %d colors", len(pal))
	}
	for i, v := range list {
		c := v.GetStringValue()
		if c == "" {
			return nil, status.Error(codes.InvalidArgument, "palette colors must be non-empty strings")
		}
		pal[i] = c
	}

	uri, err := s.Minter.Finish(id, pal)
	if err != nil {
		return nil, mapErr(err)
	}
	s.countersign(id)
	return wrapperspb.String(uri), nil
}

func (s *Server) countersign(id uint64) {
	if s.Receipts == nil {
		return
	}
	rec, ok := s.Minter.Record(id)
	if !ok {
		return
	}
	log := s.log()
	receipts, err := s.Receipts.Countersign(id, rec.CID)
	if err != nil {
		log.Warn().Err(err).Uint64("id", id).Msg("receipt countersign failed")
		return
	}
	for _, r := range receipts {
		log.Info().
			Uint64("id", r.RecordID).
			Str("cid", r.CID).
			Str("alg", r.Alg).
			Str("signer", r.SignerKey).
			Str("signature", r.Signature).
			Msg("record countersigned")
	}
}

func (s *Server) TokenURI(ctx context.Context, in *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Minter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing minter")
	}
	rec, ok := s.Minter.Record(in.GetValue())
	if !ok {
		return nil, mapErr(mint.ErrUnknownRecord)
	}
	if rec.URI == "" {
		return nil, status.Error(codes.FailedPrecondition, "record not finalized")
	}
	return wrapperspb.String(rec.URI), nil
}

func (s *Server) Record(ctx context.Context, in *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	_ = ctx
	if s == nil || s.Minter == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing minter")
	}
	rec, ok := s.Minter.Record(in.GetValue())
	if !ok {
		return nil, mapErr(mint.ErrUnknownRecord)
	}
	fields := map[string]interface{}{
		"id":    rec.ID,
		"state": rec.State.String(),
		"owner": rec.Owner,
		"uri":   rec.URI,
		"cid":   rec.CID,
	}
	if !rec.Seed.IsZero() {
		fields["seed"] = rec.Seed.Hex()
	}
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Error(codes.Internal, "record encoding failed")
	}
	return out, nil
}
