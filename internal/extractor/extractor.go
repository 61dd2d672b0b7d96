package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"email-template-server/internal/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductExtractor reads product metadata from web pages.
// Neither method returns an error: failures degrade to sentinel values.
type ProductExtractor interface {
	// Extract fetches a single page. On failure every field is a sentinel.
	Extract(ctx context.Context, pageURL string) models.ProductInfo
	// ExtractBatch fetches all pages and returns results in the order of urls.
	ExtractBatch(ctx context.Context, urls []string) []models.ProductInfo
}

// Config содержит настройки загрузки страниц.
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Concurrency  int
}

const (
	defaultTimeout      = 10 * time.Second
	defaultUserAgent    = "Mozilla/5.0"
	defaultMaxBodyBytes = 5 << 20
	defaultConcurrency  = 4
)

// Compile-time check to ensure implementation satisfies the interface.
var _ ProductExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor implements ProductExtractor over plain HTTP and goquery.
type HTMLExtractor struct {
	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	concurrency  int
	logger       *zap.Logger
}

// New creates an HTMLExtractor. Zero values in cfg are replaced with defaults.
func New(cfg Config, logger *zap.Logger) *HTMLExtractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &HTMLExtractor{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		timeout:      cfg.Timeout,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		concurrency:  cfg.Concurrency,
		logger:       logger.Named("ProductExtractor"),
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client timeout is
// overwritten so every fetch stays bounded.
func (e *HTMLExtractor) WithHTTPClient(client *http.Client) *HTMLExtractor {
	client.Timeout = e.timeout
	e.httpClient = client
	return e
}

// Extract implements ProductExtractor.
func (e *HTMLExtractor) Extract(ctx context.Context, pageURL string) models.ProductInfo {
	info, err := e.scrape(ctx, pageURL)
	if err != nil {
		e.logger.Warn("Failed to extract product info, using placeholders",
			zap.String("url", pageURL), zap.Error(err))
		return models.UnknownProduct(pageURL)
	}
	return info
}

// ExtractBatch implements ProductExtractor. Pages are fetched concurrently;
// a failed page yields models.FailedProduct and does not affect the others.
func (e *HTMLExtractor) ExtractBatch(ctx context.Context, urls []string) []models.ProductInfo {
	results := make([]models.ProductInfo, len(urls))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, pageURL := range urls {
		i, pageURL := i, pageURL // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			info, err := e.scrape(ctx, pageURL)
			if err != nil {
				e.logger.Warn("Failed to extract product info in batch, using placeholders",
					zap.String("url", pageURL), zap.Int("index", i), zap.Error(err))
				info = models.FailedProduct(pageURL)
			}
			results[i] = info
			return nil
		})
	}
	_ = g.Wait() // горутины не возвращают ошибок

	return results
}

func (e *HTMLExtractor) scrape(ctx context.Context, pageURL string) (models.ProductInfo, error) {
	start := time.Now()
	doc, err := e.fetch(ctx, pageURL)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		status := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		fetchTotal.WithLabelValues(status).Inc()
		return models.ProductInfo{}, err
	}
	fetchTotal.WithLabelValues("success").Inc()

	info := ParseProduct(pageURL, doc)
	e.logger.Debug("Product info extracted",
		zap.String("url", pageURL),
		zap.String("title", info.Title),
		zap.String("price", info.Price),
	)
	return info, nil
}

func (e *HTMLExtractor) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: preparing request for %q: %v", models.ErrFetchFailed, pageURL, err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	rsp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrFetchFailed, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		// дочитываем тело, чтобы соединение можно было переиспользовать
		_, _ = io.Copy(io.Discard, io.LimitReader(rsp.Body, 64<<10))
		return nil, fmt.Errorf("%w: unexpected status %d for %q", models.ErrFetchFailed, rsp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(rsp.Body, e.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading document %q: %w", models.ErrFetchFailed, pageURL, err)
	}
	return doc, nil
}
