package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/config"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newObjectKey = func(prefix, ext string) string {
		return path.Join(prefix, uuid.NewString()+ext)
	}
)

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Provider stores images in an S3-compatible bucket. The object key
// doubles as the deletehash.
type S3Provider struct {
	client     objectAPI
	bucket     string
	prefix     string
	publicBase string
	log        logging.Logger
}

func NewS3Provider(ctx context.Context, cfg *config.Config, log logging.Logger) (*S3Provider, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3Provider{
		client:     client,
		bucket:     cfg.S3Bucket,
		prefix:     strings.Trim(cfg.S3KeyPrefix, "/"),
		publicBase: publicBaseURL(cfg),
		log:        log,
	}, nil
}

func publicBaseURL(cfg *config.Config) string {
	switch {
	case cfg.S3PublicBaseURL != "":
		return strings.TrimRight(cfg.S3PublicBaseURL, "/")
	case cfg.S3BaseEndpoint != "":
		return strings.TrimRight(cfg.S3BaseEndpoint, "/") + "/" + cfg.S3Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
}

func (p *S3Provider) RequiresCredential() bool {
	return false
}

func (p *S3Provider) Upload(ctx context.Context, src Source, _ string) (Result, error) {
	if src.IsURL() {
		return Result{}, &common.UploadError{Source: src.String(), Err: common.ErrUnsupportedSource}
	}

	key := newObjectKey(p.prefix, Extension(src))

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(src.Data),
		ContentType: aws.String(ContentType(src)),
	})
	if err != nil {
		return Result{}, &common.UploadError{Source: src.String(), Err: err}
	}

	link := p.publicBase + "/" + key
	p.log.Debug(ctx, "s3 upload done", "source", src.String(), "key", key)
	return Result{Link: link, Deletehash: key}, nil
}

func (p *S3Provider) Delete(ctx context.Context, deletehash, _ string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(deletehash),
	})
	if err != nil {
		return &common.RemoteDeleteError{Deletehash: deletehash, Err: err}
	}
	return nil
}
