/* Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/gregjones/httpcache/test"
)

// set TPSIGNS_TEST_CACHE_BUCKET to run the conformance tests against S3
func testBucket(t *testing.T) string {
	bucket := os.Getenv("TPSIGNS_TEST_CACHE_BUCKET")
	if bucket == "" {
		t.Skip("Skipping test because TPSIGNS_TEST_CACHE_BUCKET is not set")
	}

	return bucket
}

func TestS3Cache(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, false, true)
	if err := cache.Init(); err != nil {
		t.Skipf("Skipping test due to lack of access to %v: %v", bucket, err)
	}

	test.Cache(t, cache)
}

func TestS3CacheWithGzip(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, true, true)
	if err := cache.Init(); err != nil {
		t.Skipf("Skipping test due to lack of access to %v: %v", bucket, err)
	}

	test.Cache(t, cache)
}

func TestObjectKey(t *testing.T) {
	plain := New(context.Background(), "bucket", false, false)
	zipped := New(context.Background(), "bucket", true, false)

	k1 := plain.ObjectKey("https://example.org/api/tournaments/1")
	k2 := plain.ObjectKey("https://example.org/api/tournaments/2")
	if k1 == k2 {
		t.Fatalf("distinct urls mapped to the same key %v", k1)
	}
	if !strings.HasPrefix(k1, DefaultPrefix+"/") {
		t.Errorf("key %v lacks prefix %v", k1, DefaultPrefix)
	}
	if strings.HasSuffix(k1, ".gz") {
		t.Errorf("uncompressed key %v has .gz suffix", k1)
	}

	kz := zipped.ObjectKey("https://example.org/api/tournaments/1")
	if kz != k1+".gz" {
		t.Errorf("compressed key = %v; want %v", kz, k1+".gz")
	}
}
