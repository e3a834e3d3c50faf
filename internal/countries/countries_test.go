// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package countries

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/toeirei/regform/internal/logging"
)

const body = `[
  {"name": {"common": "Россия"}, "flag": "🇷🇺"},
  {"name": {"common": "Германия"}, "flag": "🇩🇪"},
  {"name": {"common": "<b>Австрия</b>"}, "flag": "🇦🇹"},
  {"name": {"common": ""}, "flag": "🏳"}
]`

func TestFetch_MapsAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := NewLoader(srv.URL, time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []Option{
		{Value: "Австрия", Label: "🇦🇹 Австрия"},
		{Value: "Германия", Label: "🇩🇪 Германия"},
		{Value: "Россия", Label: "🇷🇺 Россия"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FailureLogsAndReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	l := NewLoader(srv.URL, time.Second)
	if _, err := l.Fetch(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Fetch error = %v, want ErrUnexpectedStatus", err)
	}

	got := l.Load(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("Load = %#v, want empty non-nil list", got)
	}
	if !strings.Contains(buf.String(), "Не удалось загрузить страны") {
		t.Fatalf("log output missing failure message: %q", buf.String())
	}
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	if _, err := NewLoader(srv.URL, time.Second).Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLoader(srv.URL, time.Second).Fetch(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestToOptions_FlagMissing(t *testing.T) {
	var r Record
	r.Name.Common = "Чад"
	got := ToOptions([]Record{r})
	if len(got) != 1 || got[0].Label != "Чад" {
		t.Fatalf("ToOptions = %#v", got)
	}
}

func TestSort_Collation(t *testing.T) {
	opts := []Option{{Value: "b"}, {Value: "Ä"}, {Value: "a"}}
	Sort(opts, language.German)
	var got []string
	for _, o := range opts {
		got = append(got, o.Value)
	}
	if diff := cmp.Diff([]string{"a", "Ä", "b"}, got); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}
