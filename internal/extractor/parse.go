package extractor

import (
	"strings"

	"email-template-server/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// ParseProduct applies the fallback chain for each field. The first strategy
// yielding a non-blank value wins; when none does, the field gets a sentinel.
//
//	title: og:title -> <title> -> first <h1>
//	image: og:image -> <img> with "product" in class -> first <img>
//	price: product:price:amount -> first span/div with class token "price"
func ParseProduct(pageURL string, doc *goquery.Document) models.ProductInfo {
	return models.ProductInfo{
		URL:   pageURL,
		Title: firstNonBlank(models.UnknownProductTitle, ogTitle(doc), titleText(doc), headingText(doc)),
		Image: firstNonBlank(models.PlaceholderImage, ogImage(doc), imageSrc(doc)),
		Price: firstNonBlank(models.PriceNotAvailable, ogPrice(doc), priceText(doc)),
	}
}

func firstNonBlank(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return fallback
}

// metaContent returns the content of the first meta tag with the given
// property that actually carries a content attribute.
func metaContent(doc *goquery.Document, property string) string {
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if p, _ := s.Attr("property"); p != property {
			return true
		}
		if c, ok := s.Attr("content"); ok && strings.TrimSpace(c) != "" {
			content = c
			return false
		}
		return true
	})
	return content
}

func ogTitle(doc *goquery.Document) string { return metaContent(doc, "og:title") }
func ogImage(doc *goquery.Document) string { return metaContent(doc, "og:image") }
func ogPrice(doc *goquery.Document) string { return metaContent(doc, "product:price:amount") }

func titleText(doc *goquery.Document) string {
	return doc.Find("title").First().Text()
}

func headingText(doc *goquery.Document) string {
	return doc.Find("h1").First().Text()
}

// imageSrc picks the product image, falling back to the first image on the
// page. Only the src of the chosen element is considered.
func imageSrc(doc *goquery.Document) string {
	images := doc.Find("img")
	chosen := images.FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return strings.Contains(strings.ToLower(class), "product")
	}).First()
	if chosen.Length() == 0 {
		chosen = images.First()
	}
	src, _ := chosen.Attr("src")
	return src
}

// priceText matches the class token "price" exactly: "price-old" does not count.
func priceText(doc *goquery.Document) string {
	return doc.Find("span.price, div.price").First().Text()
}
