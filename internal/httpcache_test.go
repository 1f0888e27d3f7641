/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHttpClientMemoryFallback(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// origin asks not to be cached; the client enforces its own TTL
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"abc","name":"U11"}]`))
	}))
	defer ts.Close()

	client := NewCachedHttpClient(context.Background(), "", 5*time.Minute)

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", ts.URL+"/api/tournaments", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("User-Agent", UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("do: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("Failed to read response body: %v", err)
		}
		if len(data) == 0 {
			t.Errorf("Empty data")
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("request %v: object not cached", i)
		}
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 origin hit, got %v", got)
	}
}

func TestHttpClientDoesNotCacheErrors(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewCachedHttpClient(context.Background(), "", 5*time.Minute)
	for i := 0; i < 2; i++ {
		resp, err := client.Get(ts.URL)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		resp.Body.Close()
	}

	if got := hits.Load(); got != 2 {
		t.Errorf("expected 2 origin hits, got %v", got)
	}
}

func TestHeaderOverrideTransportRequestHook(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("X-Api-Key")))
	}))
	defer ts.Close()

	rt := NewHeaderOverrideTransport(nil, func(req *http.Request) {
		req.Header.Set("X-Api-Key", "k1")
	}, nil)
	client := &http.Client{Transport: rt}

	req, _ := http.NewRequest("GET", ts.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "k1" {
		t.Errorf("expected injected header, got %q", body)
	}
	if req.Header.Get("X-Api-Key") != "" {
		t.Errorf("caller's request was modified")
	}
}
