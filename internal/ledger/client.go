// Package ledger talks JSON-RPC 2.0 to an IOTA full node. Only the object
// queries needed for pool discovery are wrapped.
package ledger

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

// Client wraps a JSON-RPC connection to the node and provides helper
// methods with bounded retries.
type Client struct {
	rpcClient *rpc.Client

	maxRetries int
	backoff    time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithRetries bounds transient-failure retries for each query.
func WithRetries(maxRetries int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.backoff = backoff
	}
}

// NewClient creates a new ledger client from the RPC URL.
func NewClient(ctx context.Context, rpcURL string, opts ...Option) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		rpcClient:  rpcClient,
		maxRetries: 0,
		backoff:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.backoff <= 0 {
		c.backoff = 100 * time.Millisecond
	}
	return c, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// GetOwnedObjects returns the objects owned by owner whose Move type matches
// structType exactly. A single page is enough: pool discovery only ever
// needs the first matching object.
func (c *Client) GetOwnedObjects(ctx context.Context, owner, structType string, limit int) ([]OwnedObject, error) {
	query := objectQuery{
		Filter:  objectFilter{StructType: structType},
		Options: objectOptions{ShowContent: true},
	}

	var page ownedObjectsPage
	err := c.call(ctx, &page, "iotax_getOwnedObjects", owner, query, nil, limit)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// call performs one RPC with exponential-backoff retries on failure.
func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	delay := c.backoff
	for attempt := 0; ; attempt++ {
		err := c.rpcClient.CallContext(ctx, result, method, args...)
		if err == nil {
			return nil
		}
		if attempt >= c.maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}

type objectQuery struct {
	Filter  objectFilter  `json:"filter"`
	Options objectOptions `json:"options"`
}

type objectFilter struct {
	StructType string `json:"StructType"`
}

type objectOptions struct {
	ShowContent bool `json:"showContent"`
}

type ownedObjectsPage struct {
	Data        []OwnedObject `json:"data"`
	NextCursor  *string       `json:"nextCursor"`
	HasNextPage bool          `json:"hasNextPage"`
}
