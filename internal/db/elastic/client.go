package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db"
)

// Compile-time check: Client implements db.SearchIndex.
var _ db.SearchIndex = (*Client)(nil)

const maxErrorBody = 4096

// Config holds connection parameters for the search engine.
type Config struct {
	Addrs          []string
	Username       string
	Password       string
	RequestTimeout time.Duration
	MaxRetries     int
	Transport      http.RoundTripper
}

// Client wraps the Elasticsearch client with an availability latch.
//
// The latch is set by Probe and read by every other operation: while it is false,
// operations return neutral values without touching the network.
type Client struct {
	es        *elasticsearch.Client
	available atomic.Bool
	timeout   time.Duration
	logger    *zap.Logger
}

// New creates a client. It does not contact the cluster; call Probe for that.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  cfg.Addrs,
		Username:   cfg.Username,
		Password:   cfg.Password,
		MaxRetries: cfg.MaxRetries,
		Transport:  cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	return &Client{es: es, timeout: cfg.RequestTimeout, logger: logger}, nil
}

// Probe pings the cluster once and latches availability for the process lifetime.
func (c *Client) Probe(ctx context.Context) bool {
	if err := c.Ping(ctx); err != nil {
		c.available.Store(false)
		c.logger.Warn("Search index not available, search functionality disabled", zap.Error(err))
		return false
	}
	c.available.Store(true)
	c.logger.Info("Search index connection established")
	return true
}

// Available reports the latched availability.
func (c *Client) Available() bool {
	return c.available.Load()
}

// Ping checks connectivity without touching the latch.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	return checkResponse(db.OpPing, res, err)
}

// IndexExists reports whether the named index exists. False while unavailable.
func (c *Client) IndexExists(ctx context.Context, name string) (bool, error) {
	if !c.Available() {
		return false, nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.es.Indices.Exists([]string{name}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, &db.Error{Op: db.OpIndexExists, Err: err}
	}
	defer drain(res)

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &db.Error{Op: db.OpIndexExists, Err: fmt.Errorf("unexpected status [%s]", res.Status())}
	}
}

// CreateIndex creates an index with the given mapping. No-op while unavailable.
// Returns db.ErrIndexExists if the index was created concurrently.
func (c *Client) CreateIndex(ctx context.Context, name string, mapping *db.Mapping) error {
	if !c.Available() {
		return nil
	}
	if mapping == nil {
		return errors.New("mapping is required")
	}
	if err := mapping.Validate(); err != nil {
		return fmt.Errorf("invalid mapping for %s: %w", name, err)
	}

	body, err := json.Marshal(mapping.Body())
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.es.Indices.Create(
		name,
		c.es.Indices.Create.WithBody(bytes.NewReader(body)),
		c.es.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	defer drain(res)

	if res.IsError() {
		msg := readError(res)
		if strings.Contains(msg, "resource_already_exists_exception") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: fmt.Errorf("[%s]: %s", res.Status(), msg)}
	}
	return nil
}

// Upsert indexes body under id, replacing any previous version. No-op while unavailable.
func (c *Client) Upsert(ctx context.Context, index, id string, body []byte) error {
	return c.upsert(ctx, index, id, body, false)
}

// UpsertVisible is Upsert that returns only once the document is searchable
// (refresh=wait_for). No-op while unavailable.
func (c *Client) UpsertVisible(ctx context.Context, index, id string, body []byte) error {
	return c.upsert(ctx, index, id, body, true)
}

func (c *Client) upsert(ctx context.Context, index, id string, body []byte, waitFor bool) error {
	if !c.Available() {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	opts := []func(*esapi.IndexRequest){
		c.es.Index.WithDocumentID(id),
		c.es.Index.WithContext(ctx),
	}
	if waitFor {
		opts = append(opts, c.es.Index.WithRefresh("wait_for"))
	}
	res, err := c.es.Index(index, bytes.NewReader(body), opts...)
	return checkResponse(db.OpIndex, res, err)
}

// Search runs a raw search request. Returns a nil body while unavailable.
func (c *Client) Search(ctx context.Context, index string, body []byte) ([]byte, error) {
	if !c.Available() {
		return nil, nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}
	defer drain(res)

	if res.IsError() {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("[%s]: %s", res.Status(), readError(res))}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("read body: %w", err)}
	}
	return data, nil
}

// Refresh makes recent writes to index visible to search. No-op while unavailable.
func (c *Client) Refresh(ctx context.Context, index string) error {
	if !c.Available() {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.es.Indices.Refresh(
		c.es.Indices.Refresh.WithIndex(index),
		c.es.Indices.Refresh.WithContext(ctx),
	)
	return checkResponse(db.OpRefresh, res, err)
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func checkResponse(op string, res *esapi.Response, err error) error {
	if err != nil {
		return &db.Error{Op: op, Err: err}
	}
	defer drain(res)

	if res.IsError() {
		return &db.Error{Op: op, Err: fmt.Errorf("[%s]: %s", res.Status(), readError(res))}
	}
	return nil
}

func readError(res *esapi.Response) string {
	if res.Body == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	return string(b)
}

// drain closes the body so the underlying connection can be reused.
func drain(res *esapi.Response) {
	if res == nil || res.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
