// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package countries fetches the public country list shown by the country
// selector. The list is fetched once, read only, and never cached.
package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/logging"
)

const tracerName = "regform/countries"

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Record is one element of the endpoint response.
type Record struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Flag string `json:"flag"`
}

// Option is a selectable country. Value is the submitted value, Label the
// displayed text.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Loader fetches the country list from URL.
type Loader struct {
	URL    string
	Client *http.Client
	tracer trace.Tracer
}

// NewLoader returns a loader with a gzip-aware client bounded by timeout.
func NewLoader(url string, timeout time.Duration) *Loader {
	return &Loader{
		URL: url,
		Client: &http.Client{
			Transport: gzhttp.Transport(http.DefaultTransport),
			Timeout:   timeout,
		},
		tracer: otel.Tracer(tracerName),
	}
}

// Fetch performs the GET and returns the mapped, sorted options.
func (l *Loader) Fetch(ctx context.Context) ([]Option, error) {
	tracer := l.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "countries.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", l.URL)),
	)
	defer span.End()

	records, err := l.get(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	opts := ToOptions(records)
	span.SetAttributes(attribute.Int("countries.count", len(opts)))
	span.SetStatus(codes.Ok, "")
	return opts, nil
}

func (l *Loader) get(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return records, nil
}

// Load is Fetch for the form: a failure is logged and yields an empty list.
func (l *Loader) Load(ctx context.Context) []Option {
	opts, err := l.Fetch(ctx)
	if err != nil {
		logging.L.Error(i18n.T("countries.load_failed", err.Error()))
		return []Option{}
	}
	return opts
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// clean strips markup from an upstream string. StrictPolicy escapes what it
// keeps, so the result is unescaped again for terminal output.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer().Sanitize(s)))
}

// ToOptions maps records to options sorted by name. Records without a name
// are dropped; a missing flag leaves the bare name as label.
func ToOptions(records []Record) []Option {
	opts := make([]Option, 0, len(records))
	for _, r := range records {
		name := clean(r.Name.Common)
		if name == "" {
			continue
		}
		label := name
		if flag := clean(r.Flag); flag != "" {
			label = flag + " " + name
		}
		opts = append(opts, Option{Value: name, Label: label})
	}
	Sort(opts, language.Russian)
	return opts
}

// Sort orders opts by Value using the collation rules of tag.
func Sort(opts []Option, tag language.Tag) {
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(opts, func(a, b Option) int {
		return c.CompareString(a.Value, b.Value)
	})
}
