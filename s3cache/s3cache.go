/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that keeps
 * turnierplan API responses in an Amazon S3 bucket so that repeated signage
 * runs (e.g. re-printing after a late roster change) do not re-fetch every
 * tournament from the instance.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const DefaultPrefix = "turnierplan-signage/httpcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Client is the s3 client used when interacting with S3. Init() creates
	// one from the default AWS config unless the caller already set it.
	Client *s3.Client

	// Prefix is prepended to every object key.
	Prefix string

	bucketName string
	gzip       bool
	logErrors  bool
	ctx        context.Context
}

// New returns a Cache backed by the given bucket. When gzipIn is set entries
// are compressed and their keys carry a ".gz" suffix. Callers must invoke
// Init() before use.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Cache {

	return &Cache{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
		Prefix:     DefaultPrefix,
	}
}

// Init loads the default AWS configuration (environment, shared config and
// credentials files) when no Client was provided, then verifies that the
// bucket is reachable and listable.
func (c *Cache) Init() error {
	if c.Client == nil {
		cfg, err := config.LoadDefaultConfig(c.ctx)
		if err != nil {
			return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
		}
		c.Client = s3.NewFromConfig(cfg)
	}

	if _, err := c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}

	if _, err := c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		Prefix:  aws.String(c.Prefix),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

// Get returns the cached response stored under key, if any.
func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.ObjectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		if !isNotFound(err) {
			c.logf("s3cache.get: failed to get object %v/%v: %v", c.bucketName,
				objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	var rdr io.Reader = resp.Body
	if c.gzip {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v/%v: %v",
				c.bucketName, objKey, err)
			return nil, false
		}
		defer gz.Close()
		rdr = gz
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v/%v: %v", c.bucketName,
			objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores data under key, replacing any previous entry.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.ObjectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v/%v: %v",
				c.bucketName, objKey, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v/%v: %v",
				c.bucketName, objKey, err)
			return
		}
		input.Body = bytes.NewReader(buf.Bytes())
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v/%v: %v", c.bucketName, objKey,
			err)
	}
}

// Delete removes the entry stored under key.
func (c *Cache) Delete(key string) {
	objKey := c.ObjectKey(key)
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v/%v: %v", c.bucketName,
			objKey, err)
	}
}

// ObjectKey maps an httpcache key (the request URL) to an S3 object key.
func (c *Cache) ObjectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := path.Join(c.Prefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.logErrors {
		log.Printf(format, args...)
	}
}

// no such key just indicates a cache miss
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()

	return code == "NoSuchKey" || code == "NotFound"
}
