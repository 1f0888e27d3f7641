/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mikeb26/turnierplan-signage/render"
)

type S3SinkOptions struct {
	Bucket string
	// Prefix is prepended to every object key.
	Prefix string
	Region string
	// Endpoint points the client at an S3 compatible store (R2, MinIO).
	Endpoint string
	// Static credentials; when empty the default AWS credential chain is
	// used.
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL, when set, is used to log where the documents can be
	// downloaded from.
	PublicBaseURL string
}

// S3Sink uploads documents into a bucket.
type S3Sink struct {
	client *s3.Client
	opts   S3SinkOptions
}

func NewS3Sink(ctx context.Context, opts S3SinkOptions) (*S3Sink, error) {
	if opts.Bucket == "" {
		return nil, errors.New("publish: s3 bucket is not specified")
	}
	if (opts.AccessKeyID == "") != (opts.SecretAccessKey == "") {
		return nil, errors.New("publish: s3 access key id and secret access key must be set together")
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID,
				opts.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Sink{client: client, opts: opts}, nil
}

func (sink *S3Sink) Name() string {
	return "s3"
}

// ObjectKey is the key doc is stored under.
func (sink *S3Sink) ObjectKey(timestamp time.Time, doc render.Document) string {
	return path.Join(strings.Trim(sink.opts.Prefix, "/"),
		RelativePath(timestamp, doc))
}

func (sink *S3Sink) Publish(ctx context.Context, timestamp time.Time,
	docs []render.Document) error {

	for _, doc := range docs {
		key := sink.ObjectKey(timestamp, doc)
		_, err := sink.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(sink.opts.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(doc.Content),
			ContentType: aws.String(doc.ContentType),
		})
		if err != nil {
			return fmt.Errorf("unable to upload s3://%v/%v: %w", sink.opts.Bucket,
				key, err)
		}
		if sink.opts.PublicBaseURL != "" {
			log.Printf("publish.s3: uploaded %v/%v",
				strings.TrimRight(sink.opts.PublicBaseURL, "/"), key)
		} else {
			log.Printf("publish.s3: uploaded s3://%v/%v", sink.opts.Bucket, key)
		}
	}

	return nil
}
