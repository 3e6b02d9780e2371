package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"walletscope/internal/model"
)

// DefaultPageSize is used when fetching a wallet's full history.
const DefaultPageSize = 1000

// Client fetches wallet transaction pages from the chain-indexing API.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	retry   Policy
	logger  *zap.Logger
}

// PageOptions tunes a page request.
type PageOptions struct {
	// NoLogs requests the lightweight variant without log events.
	NoLogs bool
}

// Page is one page of raw transactions plus the upstream pagination flag.
type Page struct {
	Items   []model.RawTransaction
	HasMore bool
}

type apiResponse struct {
	Data struct {
		Items      []model.RawTransaction `json:"items"`
		Pagination struct {
			HasMore bool `json:"has_more"`
		} `json:"pagination"`
	} `json:"data"`
	Error        bool   `json:"error"`
	ErrorMessage string `json:"error_message"`
	ErrorCode    int    `json:"error_code"`
}

// NewClient builds an indexing API client.
func NewClient(baseURL, key string, retry Policy, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: 30 * time.Second},
		retry:   retry,
		logger:  logger,
	}
}

// FetchPage retrieves one page of a wallet's transactions. Transport failures
// and malformed bodies are retried per the client's policy; after the budget is
// exhausted the error is returned with HasMore false so callers halt safely.
// An explicit upstream error flag is terminal but not an error: it yields an
// empty page with HasMore false.
func (c *Client) FetchPage(ctx context.Context, chainID uint64, wallet string, pageSize, page int, opts PageOptions) (Page, error) {
	endpoint := c.pageURL(chainID, wallet, pageSize, page, opts)

	var out Page
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		resp, err := c.get(ctx, endpoint)
		if err != nil {
			c.logger.Warn("indexer page fetch failed",
				zap.Uint64("chain_id", chainID),
				zap.Int("page", page),
				zap.Error(err),
			)
			return err
		}

		if resp.Error {
			c.logger.Warn("indexer reported error",
				zap.Uint64("chain_id", chainID),
				zap.Int("page", page),
				zap.Int("code", resp.ErrorCode),
				zap.String("message", resp.ErrorMessage),
			)
			out = Page{HasMore: false}
			return nil
		}

		out = Page{Items: resp.Data.Items, HasMore: resp.Data.Pagination.HasMore}
		return nil
	})
	if err != nil {
		return Page{HasMore: false}, err
	}
	return out, nil
}

// FetchAll drives FetchPage across successive pages until the upstream reports
// no further pages, a page exhausts its retry budget, or maxPages is reached.
// A failing page truncates the result; whatever was accumulated is returned.
func (c *Client) FetchAll(ctx context.Context, chainID uint64, wallet string, maxPages int, opts PageOptions) []model.RawTransaction {
	var items []model.RawTransaction
	for page := 0; page < maxPages; page++ {
		result, err := c.FetchPage(ctx, chainID, wallet, DefaultPageSize, page, opts)
		if err != nil {
			return items
		}
		items = append(items, result.Items...)
		if !result.HasMore {
			break
		}
	}
	return items
}

func (c *Client) pageURL(chainID uint64, wallet string, pageSize, page int, opts PageOptions) string {
	query := url.Values{}
	query.Set("page-size", strconv.Itoa(pageSize))
	query.Set("page-number", strconv.Itoa(page))
	query.Set("key", c.key)
	if opts.NoLogs {
		query.Set("no-logs", "true")
	}

	return fmt.Sprintf("%s/v1/%d/address/%s/transactions_v2/?%s",
		strings.TrimRight(c.baseURL, "/"), chainID, wallet, query.Encode())
}

func (c *Client) get(ctx context.Context, endpoint string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indexer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indexer status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode indexer response: %w", err)
	}
	return &parsed, nil
}
