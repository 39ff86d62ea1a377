package publish

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/sync/errgroup"

	"github.com/domkit-dev/domkit/internal/build"
	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
)

// hashKey is the object metadata key holding the file's SHA-256.
const hashKey = "sha256"

// pageCacheControl is used for HTML so new deploys are picked up at once.
const pageCacheControl = "no-cache"

// ObjectAPI is the subset of the S3 client the publisher needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// Options configures a publish run.
type Options struct {
	Bucket       string
	Prefix       string
	CacheControl string

	// Prune deletes objects under Prefix that the manifest does not list.
	Prune bool

	// DryRun reports what would change without touching the bucket.
	DryRun bool

	// Concurrency bounds parallel uploads (default 8).
	Concurrency int

	Logger *slog.Logger
}

// OptionsFromConfig returns Options for the project's publish section.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Bucket:       cfg.Publish.Bucket,
		Prefix:       cfg.Publish.Prefix,
		CacheControl: cfg.Publish.CacheControl,
	}
}

// Result summarizes a publish run.
type Result struct {
	Uploaded []string
	Skipped  []string
	Deleted  []string
	Duration time.Duration
}

// Publisher uploads a build directory.
type Publisher struct {
	client  ObjectAPI
	options Options
	logger  *slog.Logger
}

// New creates a publisher. It fails with E180 when no bucket is set.
func New(client ObjectAPI, options Options) (*Publisher, error) {
	if options.Bucket == "" {
		return nil, errors.New("E180")
	}
	if options.Concurrency <= 0 {
		options.Concurrency = 8
	}
	if options.CacheControl == "" {
		options.CacheControl = config.DefaultCacheControl
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{client: client, options: options, logger: logger}, nil
}

// NewClient loads the default AWS configuration and returns an S3 client.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E181").Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Key returns the object key for a manifest file.
func (p *Publisher) Key(file string) string {
	prefix := strings.Trim(p.options.Prefix, "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + file
}

// Publish uploads every file in dir's manifest.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()
	manifest, err := build.ReadManifest(dir)
	if err != nil {
		return nil, errors.New("E182").
			WithDetail("Run domkit build before publishing.").
			Wrap(err)
	}

	result := &Result{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.options.Concurrency)
	for _, file := range build.SortedFiles(manifest) {
		hash := manifest[file]
		g.Go(func() error {
			uploaded, err := p.upload(gctx, dir, file, hash)
			if err != nil {
				return err
			}
			mu.Lock()
			if uploaded {
				result.Uploaded = append(result.Uploaded, file)
			} else {
				result.Skipped = append(result.Skipped, file)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stale keys go only after every upload succeeded.
	if p.options.Prune {
		deleted, err := p.prune(ctx, manifest)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
	}

	sort.Strings(result.Uploaded)
	sort.Strings(result.Skipped)
	result.Duration = time.Since(start)

	p.logger.Info("published site",
		"bucket", p.options.Bucket,
		"uploaded", len(result.Uploaded),
		"skipped", len(result.Skipped),
		"deleted", len(result.Deleted),
		"dry_run", p.options.DryRun,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result, nil
}

func (p *Publisher) upload(ctx context.Context, dir, file, hash string) (bool, error) {
	key := p.Key(file)

	head, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.options.Bucket),
		Key:    aws.String(key),
	})
	if err == nil && head.Metadata[hashKey] == hash {
		return false, nil
	}
	if p.options.DryRun {
		p.logger.Info("would upload", "key", key)
		return true, nil
	}

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(file)))
	if err != nil {
		return false, errors.New("E182").Wrap(err).WithLocation(file, 0, 0)
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.options.Bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(ContentType(file)),
		CacheControl: aws.String(p.cacheControl(file)),
		Metadata:     map[string]string{hashKey: hash},
	})
	if err != nil {
		return false, errors.New("E182").Wrap(err).WithLocation(file, 0, 0)
	}
	p.logger.Debug("uploaded", "key", key)
	return true, nil
}

func (p *Publisher) prune(ctx context.Context, manifest map[string]string) ([]string, error) {
	keep := make(map[string]struct{}, len(manifest))
	for file := range manifest {
		keep[p.Key(file)] = struct{}{}
	}

	input := &s3.ListObjectsV2Input{Bucket: aws.String(p.options.Bucket)}
	if prefix := strings.Trim(p.options.Prefix, "/"); prefix != "" {
		input.Prefix = aws.String(prefix + "/")
	}

	var stale []string
	pages := s3.NewListObjectsV2Paginator(p.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, errors.New("E182").Wrap(err)
		}
		stale = append(stale, staleKeys(page.Contents, keep)...)
	}
	sort.Strings(stale)

	for _, key := range stale {
		if p.options.DryRun {
			p.logger.Info("would delete", "key", key)
			continue
		}
		if _, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.options.Bucket),
			Key:    aws.String(key),
		}); err != nil {
			return nil, errors.New("E182").Wrap(err).WithLocation(key, 0, 0)
		}
	}
	return stale, nil
}

func staleKeys(objects []s3types.Object, keep map[string]struct{}) []string {
	var keys []string
	for _, obj := range objects {
		if obj.Key == nil {
			continue
		}
		if _, ok := keep[*obj.Key]; !ok {
			keys = append(keys, *obj.Key)
		}
	}
	return keys
}

func (p *Publisher) cacheControl(file string) string {
	if path.Ext(file) == ".html" {
		return pageCacheControl
	}
	return p.options.CacheControl
}

// ContentType returns the MIME type for a site file.
func ContentType(file string) string {
	switch ext := strings.ToLower(path.Ext(file)); ext {
	case ".wasm":
		return "application/wasm"
	case ".js":
		return "text/javascript; charset=utf-8"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
