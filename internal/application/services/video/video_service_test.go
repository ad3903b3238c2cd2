package video

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/infrastructure/ratelimit"
	serrors "github.com/easayliu/ytdl-web/internal/shared/errors"
)

type fakeExtractor struct {
	info        *entities.VideoInfo
	extractErr  error
	downloadErr error

	extractCalls int
	downloads    []entities.DownloadRequest
	ctxErr       error
}

func (f *fakeExtractor) Name() string { return "fake" }

func (f *fakeExtractor) Extract(ctx context.Context, url string) (*entities.VideoInfo, error) {
	f.extractCalls++
	f.ctxErr = ctx.Err()
	return f.info, f.extractErr
}

func (f *fakeExtractor) Download(ctx context.Context, req entities.DownloadRequest) error {
	f.downloads = append(f.downloads, req)
	f.ctxErr = ctx.Err()
	return f.downloadErr
}

type fakeNotifier struct {
	mu      sync.Mutex
	done    chan struct{}
	success int
	failed  int
}

func (n *fakeNotifier) NotifyDownloadComplete(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	n.mu.Lock()
	n.success++
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *fakeNotifier) NotifyDownloadFailed(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	n.mu.Lock()
	n.failed++
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *fakeNotifier) IsEnabled() bool { return true }

func newService(ext *fakeExtractor) contracts.VideoService {
	return NewAppVideoService(ext, ratelimit.New(0), nil)
}

func TestFetch_EmptyURL(t *testing.T) {
	ext := &fakeExtractor{}
	svc := newService(ext)

	_, err := svc.Fetch(context.Background(), "   ")
	if !serrors.IsCode(err, serrors.ErrorCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
	if ext.extractCalls != 0 {
		t.Error("extractor should not be called for empty url")
	}
}

func TestFetch_Success(t *testing.T) {
	want := &entities.VideoInfo{ID: "abc", Title: "Sample"}
	ext := &fakeExtractor{info: want}
	svc := newService(ext)

	got, err := svc.Fetch(context.Background(), "not-even-a-url")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("Fetch should return the extractor result")
	}
}

func TestFetch_FailureKeepsMessage(t *testing.T) {
	ext := &fakeExtractor{extractErr: errors.New("ERROR: [generic] Unsupported URL: https://example.com")}
	svc := newService(ext)

	_, err := svc.Fetch(context.Background(), "https://example.com")
	if !serrors.IsCode(err, serrors.ErrorCodeFetchFailed) {
		t.Fatalf("expected FETCH_FAILED, got %v", err)
	}
	if msg := serrors.MessageOf(err); msg != "ERROR: [generic] Unsupported URL: https://example.com" {
		t.Errorf("message should be kept verbatim, got %q", msg)
	}
	if ext.extractCalls != 1 {
		t.Errorf("fetch should not retry, got %d calls", ext.extractCalls)
	}
}

func TestFetch_IgnoresRequestCancel(t *testing.T) {
	ext := &fakeExtractor{info: &entities.VideoInfo{}}
	svc := newService(ext)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Fetch(ctx, "https://example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.ctxErr != nil {
		t.Error("extractor context should be detached from request cancellation")
	}
}

func TestDownload(t *testing.T) {
	tests := []struct {
		name       string
		req        entities.DownloadRequest
		err        error
		wantCode   serrors.ErrorCode
		wantFormat string
	}{
		{
			name:       "空格式按best下载",
			req:        entities.DownloadRequest{URL: "https://example.com/v", OutputDir: "/tmp/out"},
			wantFormat: "best",
		},
		{
			name:       "指定格式原样传递",
			req:        entities.DownloadRequest{URL: "https://example.com/v", FormatID: "does-not-exist", OutputDir: "/tmp/out"},
			err:        errors.New("ERROR: Requested format is not available"),
			wantCode:   serrors.ErrorCodeDownloadFailed,
			wantFormat: "does-not-exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &fakeExtractor{downloadErr: tt.err}
			svc := newService(ext)

			err := svc.Download(context.Background(), tt.req)
			if tt.wantCode == "" && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantCode != "" {
				if !serrors.IsCode(err, tt.wantCode) {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				if serrors.MessageOf(err) != tt.err.Error() {
					t.Errorf("message should be kept verbatim, got %q", serrors.MessageOf(err))
				}
			}

			if len(ext.downloads) != 1 {
				t.Fatalf("expected one download call, got %d", len(ext.downloads))
			}
			got := ext.downloads[0]
			if got.FormatID != tt.wantFormat || got.OutputDir != tt.req.OutputDir || got.URL != tt.req.URL {
				t.Errorf("unexpected request passed to extractor: %+v", got)
			}
		})
	}
}

func TestDownload_EmptyURL(t *testing.T) {
	ext := &fakeExtractor{}
	svc := newService(ext)

	err := svc.Download(context.Background(), entities.DownloadRequest{})
	if !serrors.IsCode(err, serrors.ErrorCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
	if len(ext.downloads) != 0 {
		t.Error("extractor should not be called")
	}
}

func TestDownload_Notifies(t *testing.T) {
	ext := &fakeExtractor{downloadErr: errors.New("ERROR: boom")}
	notifier := &fakeNotifier{done: make(chan struct{}, 1)}
	svc := NewAppVideoService(ext, ratelimit.New(0), notifier)

	_ = svc.Download(context.Background(), entities.DownloadRequest{URL: "https://example.com/v"})

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.failed != 1 || notifier.success != 0 {
		t.Errorf("expected one failure notification, got success=%d failed=%d", notifier.success, notifier.failed)
	}
}
