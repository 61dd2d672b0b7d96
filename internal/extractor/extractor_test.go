package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"email-template-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const productPage = `<html><head>
<meta property="og:title" content="Trail Shoe">
<meta property="og:image" content="https://cdn.test/shoe.jpg">
<meta property="product:price:amount" content="89.00">
</head><body></body></html>`

func newTestExtractor(timeout time.Duration) *HTMLExtractor {
	return New(Config{Timeout: timeout, Concurrency: 2}, zap.NewNop())
}

func TestExtract_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		fmt.Fprint(w, productPage)
	}))
	defer srv.Close()

	info := newTestExtractor(time.Second).Extract(context.Background(), srv.URL)

	assert.Equal(t, models.ProductInfo{
		URL:   srv.URL,
		Title: "Trail Shoe",
		Image: "https://cdn.test/shoe.jpg",
		Price: "89.00",
	}, info)
	assert.Equal(t, "Mozilla/5.0", gotUA)
}

func TestExtract_NetworkErrorYieldsSentinels(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	deadURL := srv.URL
	srv.Close()

	info := newTestExtractor(time.Second).Extract(context.Background(), deadURL)
	assert.Equal(t, models.UnknownProduct(deadURL), info)
}

func TestExtract_HTTPErrorYieldsSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, productPage)
	}))
	defer srv.Close()

	info := newTestExtractor(time.Second).Extract(context.Background(), srv.URL)
	assert.Equal(t, models.UnknownProduct(srv.URL), info)
}

func TestExtract_TimeoutIsBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	info := newTestExtractor(100*time.Millisecond).Extract(context.Background(), srv.URL)
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.Equal(t, models.UnknownProduct(srv.URL), info)
}

func TestExtract_InvalidURL(t *testing.T) {
	info := newTestExtractor(time.Second).Extract(context.Background(), "://nope")
	assert.Equal(t, models.UnknownProduct("://nope"), info)
}

func TestExtractBatch_PreservesOrderAndIsolatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/slow":
			time.Sleep(50 * time.Millisecond)
			fmt.Fprint(w, `<html><head><title>Slow</title></head></html>`)
		case "/fast":
			fmt.Fprint(w, `<html><head><title>Fast</title></head></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/slow", srv.URL + "/missing", srv.URL + "/fast"}
	got := newTestExtractor(time.Second).ExtractBatch(context.Background(), urls)

	require.Len(t, got, 3)
	assert.Equal(t, "Slow", got[0].Title)
	assert.Equal(t, models.FailedProduct(urls[1]), got[1])
	assert.Equal(t, "Fast", got[2].Title)
	for i, p := range got {
		assert.Equal(t, urls[i], p.URL)
	}
}

func TestExtractBatch_Empty(t *testing.T) {
	got := newTestExtractor(time.Second).ExtractBatch(context.Background(), nil)
	assert.Empty(t, got)
}
