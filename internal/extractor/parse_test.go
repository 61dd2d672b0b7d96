package extractor

import (
	"strings"
	"testing"

	"email-template-server/internal/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseProduct(t *testing.T) {
	const pageURL = "https://shop.test/item"

	tests := []struct {
		name string
		html string
		want models.ProductInfo
	}{
		{
			name: "open graph wins over everything",
			html: `<html><head>
				<meta property="og:title" content="OG Title">
				<meta property="og:image" content="https://cdn.test/og.jpg">
				<meta property="product:price:amount" content="19.99">
				<title>Page Title</title></head>
				<body><h1>Heading</h1><img class="product-main" src="/p.jpg"><span class="price">$5</span></body></html>`,
			want: models.ProductInfo{URL: pageURL, Title: "OG Title", Image: "https://cdn.test/og.jpg", Price: "19.99"},
		},
		{
			name: "fallbacks without open graph",
			html: `<html><head><title> Page Title </title></head>
				<body><img src="/logo.png"><img class="Gallery ProductImage" src="/p.jpg">
				<div class="old-price">$9</div><div class="amount price">  $7.50 </div></body></html>`,
			want: models.ProductInfo{URL: pageURL, Title: "Page Title", Image: "/p.jpg", Price: "$7.50"},
		},
		{
			name: "h1 and first image when nothing better exists",
			html: `<html><body><h1>Heading</h1><h1>Second</h1><img src="/first.png"><img src="/second.png"></body></html>`,
			want: models.ProductInfo{URL: pageURL, Title: "Heading", Image: "/first.png", Price: models.PriceNotAvailable},
		},
		{
			name: "meta without content falls through",
			html: `<html><head>
				<meta property="og:title">
				<meta property="og:image">
				<meta property="product:price:amount">
				<title>Fallback</title></head>
				<body><img src="/a.png"><span class="price">10</span></body></html>`,
			want: models.ProductInfo{URL: pageURL, Title: "Fallback", Image: "/a.png", Price: "10"},
		},
		{
			name: "bare page yields sentinels",
			html: `<html><body><p>nothing to see</p></body></html>`,
			want: models.UnknownProduct(pageURL),
		},
		{
			name: "malformed html is tolerated",
			html: `<html><head><title>Broken</title><body><div class="price"> 3 </b></i>`,
			want: models.ProductInfo{URL: pageURL, Title: "Broken", Image: models.PlaceholderImage, Price: "3"},
		},
		{
			name: "product image without src yields placeholder",
			html: `<html><body><img class="product"><img src="/other.png"></body></html>`,
			want: models.ProductInfo{URL: pageURL, Title: models.UnknownProductTitle, Image: models.PlaceholderImage, Price: models.PriceNotAvailable},
		},
		{
			name: "price class must be an exact token",
			html: `<html><body><span class="price-tag">1</span><p class="price">2</p></body></html>`,
			want: models.UnknownProduct(pageURL),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProduct(pageURL, mustDoc(t, tt.html))
			assert.Equal(t, tt.want, got)
		})
	}
}
