package pandemic

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"covidcrawl/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/pandemic")

func newClient() (*resty.Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "services/pandemic/http")

	return client, nil
}

func (s *Service) fetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	res, err := s.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, &FetchError{URL: link, Err: err}
	}
	if res.IsError() {
		return nil, &FetchError{URL: link, Err: fmt.Errorf("status %s", res.Status())}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", link, err)
	}
	return doc, nil
}
