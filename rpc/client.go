package rpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/mint"
)

// Client drives a remote minter over the Mint gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client MintClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// Dialer overrides the transport dialer, e.g. to reach an in-memory
	// listener.
	Dialer func(ctx context.Context, target string) (net.Conn, error)
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.Dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(opts.Dialer))
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewMintClient(cc)}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) Request(caller string) (mint.Token, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Request(ctx, wrapperspb.String(caller))
	if err != nil {
		return "", mapRPC(err)
	}
	return mint.Token(reply.GetValue()), nil
}

func (c *Client) Fulfill(token mint.Token, value mint.Seed) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	in, err := structpb.NewStruct(map[string]interface{}{
		"token": string(token),
		"value": value.Hex(),
	})
	if err != nil {
		return 0, err
	}
	reply, err := c.client.Fulfill(ctx, in)
	if err != nil {
		return 0, mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) Finish(id uint64, pal curve.Palette) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	colors := make([]interface{}, len(pal))
	for i, col := range pal {
		colors[i] = col
	}
	in, err := structpb.NewStruct(map[string]interface{}{
		"id":      id,
		"palette": colors,
	})
	if err != nil {
		return "", err
	}
	reply, err := c.client.Finish(ctx, in)
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// TokenURI fetches only the finalized resource URI of one record.
func (c *Client) TokenURI(id uint64) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.TokenURI(ctx, wrapperspb.UInt64(id))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Record fetches a snapshot of one record.
func (c *Client) Record(id uint64) (mint.Record, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Record(ctx, wrapperspb.UInt64(id))
	if err != nil {
		return mint.Record{}, mapRPC(err)
	}
	fields := reply.GetFields()
	rec := mint.Record{
		ID:    uint64(fields["id"].GetNumberValue()),
		Owner: fields["owner"].GetStringValue(),
		URI:   fields["uri"].GetStringValue(),
		CID:   fields["cid"].GetStringValue(),
	}
	switch fields["state"].GetStringValue() {
	case mint.Seeded.String():
		rec.State = mint.Seeded
	case mint.Finalized.String():
		rec.State = mint.Finalized
	default:
		rec.State = mint.Reserved
	}
	if h := fields["seed"].GetStringValue(); h != "" {
		if seed, err := mint.SeedFromHex(h); err == nil {
			rec.Seed = seed
		}
	}
	return rec, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
