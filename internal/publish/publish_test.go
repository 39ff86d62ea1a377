package publish

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/domkit-dev/domkit/internal/build"
	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
)

type object struct {
	body         string
	contentType  string
	cacheControl string
	metadata     map[string]string
}

// fakeS3 is an in-memory bucket.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]object
	puts    int
	failPut bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]object)}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, io.ErrClosedPipe
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	f.objects[*in.Key] = object{
		body:         string(data),
		contentType:  aws.ToString(in.ContentType),
		cacheControl: aws.ToString(in.CacheControl),
		metadata:     in.Metadata,
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[*in.Key]
	if !ok {
		return nil, &s3types.NotFound{}
	}
	return &s3.HeadObjectOutput{Metadata: obj.metadata}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for key := range f.objects {
		if strings.HasPrefix(key, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, s3types.Object{Key: aws.String(key)})
		}
	}
	return out, nil
}

func (f *fakeS3) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeSite creates a build directory with a manifest listing files.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	manifest := make(map[string]string)
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		manifest[name] = "hash-" + body
	}
	data, err := json.Marshal(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, build.ManifestFile), data, 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(newFakeS3(), Options{})
	var de *errors.DomkitError
	if !errors.As(err, &de) || de.Code != "E180" {
		t.Errorf("error = %v, want E180", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Publish.Bucket = "site"
	cfg.Publish.Prefix = "v1"

	opts := OptionsFromConfig(cfg)
	if opts.Bucket != "site" || opts.Prefix != "v1" || opts.CacheControl != config.DefaultCacheControl {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "login/index.html"},
		{"site", "site/login/index.html"},
		{"/site/", "site/login/index.html"},
	}
	for _, tt := range tests {
		p, _ := New(newFakeS3(), Options{Bucket: "b", Prefix: tt.prefix})
		if got := p.Key("login/index.html"); got != tt.want {
			t.Errorf("Key() with prefix %q = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"app.wasm", "application/wasm"},
		{"wasm_exec.js", "text/javascript; charset=utf-8"},
		{"index.html", "text/html; charset=utf-8"},
		{"blob.unknownext", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentType(tt.file); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestPublish(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"index.html":       "home",
		"login/index.html": "login",
		"app.wasm":         "wasm",
	})
	bucket := newFakeS3()
	p, err := New(bucket, Options{Bucket: "b", Prefix: "site", Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}

	res, err := p.Publish(context.Background(), dir)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	want := []string{"app.wasm", "index.html", "login/index.html"}
	if !reflect.DeepEqual(res.Uploaded, want) {
		t.Errorf("Uploaded = %v, want %v", res.Uploaded, want)
	}

	page := bucket.objects["site/login/index.html"]
	if page.body != "login" || page.cacheControl != "no-cache" || page.metadata["sha256"] != "hash-login" {
		t.Errorf("login page object = %+v", page)
	}
	wasm := bucket.objects["site/app.wasm"]
	if wasm.contentType != "application/wasm" || wasm.cacheControl != config.DefaultCacheControl {
		t.Errorf("wasm object = %+v", wasm)
	}

	// Unchanged files are skipped on the next run.
	res, err = p.Publish(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Uploaded) != 0 || len(res.Skipped) != 3 || bucket.puts != 3 {
		t.Errorf("second run uploaded %v skipped %v puts %d", res.Uploaded, res.Skipped, bucket.puts)
	}
}

func TestPublishPrune(t *testing.T) {
	dir := writeSite(t, map[string]string{"index.html": "home"})
	bucket := newFakeS3()
	bucket.objects["site/old/index.html"] = object{}
	bucket.objects["other/keep.txt"] = object{}

	p, _ := New(bucket, Options{Bucket: "b", Prefix: "site", Prune: true, Logger: quiet()})
	res, err := p.Publish(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Deleted, []string{"site/old/index.html"}) {
		t.Errorf("Deleted = %v", res.Deleted)
	}
	if got := bucket.keys(); !reflect.DeepEqual(got, []string{"other/keep.txt", "site/index.html"}) {
		t.Errorf("bucket keys = %v", got)
	}
}

func TestPublishDryRun(t *testing.T) {
	dir := writeSite(t, map[string]string{"index.html": "home"})
	bucket := newFakeS3()
	bucket.objects["stale.html"] = object{}

	p, _ := New(bucket, Options{Bucket: "b", Prune: true, DryRun: true, Logger: quiet()})
	res, err := p.Publish(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Uploaded) != 1 || len(res.Deleted) != 1 {
		t.Errorf("result = %+v", res)
	}
	if bucket.puts != 0 || len(bucket.keys()) != 1 {
		t.Error("dry run modified the bucket")
	}
}

func TestPublishErrors(t *testing.T) {
	p, _ := New(newFakeS3(), Options{Bucket: "b", Logger: quiet()})
	_, err := p.Publish(context.Background(), t.TempDir())
	var de *errors.DomkitError
	if !errors.As(err, &de) || de.Code != "E182" {
		t.Errorf("missing manifest error = %v, want E182", err)
	}

	bucket := newFakeS3()
	bucket.failPut = true
	p, _ = New(bucket, Options{Bucket: "b", Logger: quiet()})
	_, err = p.Publish(context.Background(), writeSite(t, map[string]string{"index.html": "x"}))
	if !errors.As(err, &de) || de.Code != "E182" || !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("put error = %v, want E182 wrapping io.ErrClosedPipe", err)
	}
}
