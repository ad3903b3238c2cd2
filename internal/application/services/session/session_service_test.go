package session

import (
	"context"
	"testing"
	"time"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/services/format"
	"github.com/easayliu/ytdl-web/internal/domain/valueobjects"
	"github.com/easayliu/ytdl-web/internal/infrastructure/repository"
	serrors "github.com/easayliu/ytdl-web/internal/shared/errors"
)

type fakeVideoService struct {
	info        *entities.VideoInfo
	fetchErr    error
	downloadErr error

	fetched   []string
	downloads []entities.DownloadRequest
}

func (f *fakeVideoService) Fetch(ctx context.Context, url string) (*entities.VideoInfo, error) {
	f.fetched = append(f.fetched, url)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.info, nil
}

func (f *fakeVideoService) Download(ctx context.Context, req entities.DownloadRequest) error {
	f.downloads = append(f.downloads, req)
	return f.downloadErr
}

func (f *fakeVideoService) BackendName() string { return "fake" }

func sampleInfo() *entities.VideoInfo {
	size := int64(52428800)
	return &entities.VideoInfo{
		ID:    "abc",
		Title: "Sample",
		Formats: []entities.FormatDescriptor{
			{FormatID: "18", Extension: "mp4", Filesize: &size, VideoCodec: "avc1", AudioCodec: "mp4a"},
			{FormatID: "140", Extension: "m4a", VideoCodec: "none", AudioCodec: "mp4a"},
		},
	}
}

func setup(t *testing.T, video *fakeVideoService) (*AppSessionService, *entities.Session) {
	t.Helper()
	repo := repository.NewSessionRepository()
	svc := NewAppSessionService(repo, video, "/default", time.Hour).(*AppSessionService)
	sess, err := svc.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return svc, sess
}

func TestOpen_ReusesExistingSession(t *testing.T) {
	svc, sess := setup(t, &fakeVideoService{})

	again, err := svc.Open(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if again.ID != sess.ID {
		t.Error("known id should return the same session")
	}

	fresh, _ := svc.Open(context.Background(), "unknown")
	if fresh.ID == "unknown" || fresh.OutputDir != "/default" {
		t.Errorf("unknown id should create a new session with default dir, got %+v", fresh)
	}
}

func TestSubmitURL_Success(t *testing.T) {
	video := &fakeVideoService{info: sampleInfo()}
	svc, sess := setup(t, video)
	ctx := context.Background()

	if err := svc.SubmitURL(ctx, sess.ID, " https://example.com/v ", "/out"); err != nil {
		t.Fatalf("SubmitURL failed: %v", err)
	}

	snap, busy, _ := svc.Snapshot(ctx, sess.ID)
	if busy {
		t.Fatal("session should not be busy")
	}
	if snap.State != valueobjects.ViewStateLoaded || snap.Info == nil {
		t.Errorf("expected loaded state, got %s", snap.State)
	}
	if snap.URL != "https://example.com/v" || snap.OutputDir != "/out" {
		t.Errorf("unexpected session fields: %+v", snap)
	}
	if len(snap.Banners) != 0 {
		t.Errorf("no banners expected, got %+v", snap.Banners)
	}
}

func TestSubmitURL_FetchFailure(t *testing.T) {
	video := &fakeVideoService{
		info:     sampleInfo(),
		fetchErr: serrors.NewServiceError(serrors.ErrorCodeFetchFailed, "ERROR: Unsupported URL: x"),
	}
	svc, sess := setup(t, video)
	ctx := context.Background()

	err := svc.SubmitURL(ctx, sess.ID, "x", "/out")
	if !serrors.IsCode(err, serrors.ErrorCodeFetchFailed) {
		t.Fatalf("expected FETCH_FAILED, got %v", err)
	}

	snap, _, _ := svc.Snapshot(ctx, sess.ID)
	if snap.State != valueobjects.ViewStateIdle || snap.Info != nil {
		t.Error("failed fetch should return to idle without info")
	}
	if len(snap.Banners) != 1 || snap.Banners[0].Message != "Error extracting video info: ERROR: Unsupported URL: x" {
		t.Errorf("unexpected banners: %+v", snap.Banners)
	}
}

func TestSubmitURL_ReplacesSnapshot(t *testing.T) {
	video := &fakeVideoService{info: sampleInfo()}
	svc, sess := setup(t, video)
	ctx := context.Background()

	_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/a", "/out")
	second := &entities.VideoInfo{ID: "second"}
	video.info = second
	_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/a", "/out")

	if len(video.fetched) != 2 {
		t.Errorf("every submit should fetch, got %d fetches", len(video.fetched))
	}
	snap, _, _ := svc.Snapshot(ctx, sess.ID)
	if snap.Info != second {
		t.Error("snapshot should be replaced wholesale")
	}
	if len(snap.Banners) != 1 || snap.Banners[0].Message != MessageNoFormats {
		t.Errorf("empty formats should produce a warning, got %+v", snap.Banners)
	}
}

func TestSubmitURL_EmptyURL(t *testing.T) {
	video := &fakeVideoService{info: sampleInfo()}
	svc, sess := setup(t, video)
	ctx := context.Background()

	_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/a", "/out")
	if err := svc.SubmitURL(ctx, sess.ID, "", "/out"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _, _ := svc.Snapshot(ctx, sess.ID)
	if snap.State != valueobjects.ViewStateIdle || snap.Info != nil {
		t.Error("empty url should return to idle")
	}
	if len(video.fetched) != 1 {
		t.Error("empty url should not fetch")
	}
}

func TestDownload(t *testing.T) {
	tests := []struct {
		name       string
		selection  string
		err        error
		wantFormat string
		wantBanner string
	}{
		{"哨兵项下载best", format.SentinelLabel, nil, "best", MessageDownloadDone},
		{"选择具体格式", "140 - Audio only - N/A - m4a - N/A", nil, "140", MessageDownloadDone},
		{
			name:       "下载失败",
			selection:  "18 - Video + Audio - N/A - mp4 - 50.0 MB",
			err:        serrors.NewServiceError(serrors.ErrorCodeDownloadFailed, "ERROR: disk full"),
			wantFormat: "18",
			wantBanner: "Download error: ERROR: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := &fakeVideoService{info: sampleInfo(), downloadErr: tt.err}
			svc, sess := setup(t, video)
			ctx := context.Background()

			_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/v", "/out")
			_ = svc.Download(ctx, sess.ID, tt.selection, "/dl")

			if len(video.downloads) != 1 {
				t.Fatalf("expected one download, got %d", len(video.downloads))
			}
			req := video.downloads[0]
			if req.FormatID != tt.wantFormat || req.OutputDir != "/dl" || req.URL != "https://example.com/v" {
				t.Errorf("unexpected download request: %+v", req)
			}

			snap, _, _ := svc.Snapshot(ctx, sess.ID)
			if snap.State != valueobjects.ViewStateLoaded {
				t.Errorf("state after download should be loaded, got %s", snap.State)
			}
			if len(snap.Banners) != 1 || snap.Banners[0].Message != tt.wantBanner {
				t.Errorf("unexpected banners: %+v", snap.Banners)
			}
			if snap.Selection != tt.selection {
				t.Errorf("selection should be kept, got %q", snap.Selection)
			}
		})
	}
}

func TestDownload_RequiresLoadedFormats(t *testing.T) {
	video := &fakeVideoService{info: &entities.VideoInfo{ID: "empty"}}
	svc, sess := setup(t, video)
	ctx := context.Background()

	err := svc.Download(ctx, sess.ID, format.SentinelLabel, "/dl")
	if !serrors.IsCode(err, serrors.ErrorCodeInvalidRequest) {
		t.Errorf("idle session should reject download, got %v", err)
	}

	_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/v", "/out")
	err = svc.Download(ctx, sess.ID, format.SentinelLabel, "/dl")
	if !serrors.IsCode(err, serrors.ErrorCodeInvalidRequest) {
		t.Errorf("session without formats should reject download, got %v", err)
	}
	if len(video.downloads) != 0 {
		t.Error("no download should reach the video service")
	}
}

func TestSnapshot_Busy(t *testing.T) {
	svc, sess := setup(t, &fakeVideoService{})
	ctx := context.Background()

	sess.Lock()
	sess.SetActivity(MessageDownloading)
	snap, busy, err := svc.Snapshot(ctx, sess.ID)
	activity := svc.Activity(ctx, sess.ID)
	sess.Unlock()

	if err != nil || !busy || snap != nil {
		t.Errorf("locked session should report busy, got snap=%v busy=%v err=%v", snap, busy, err)
	}
	if activity != MessageDownloading {
		t.Errorf("activity should be readable while busy, got %q", activity)
	}
	if svc.Activity(ctx, "missing") != "" {
		t.Error("unknown session should have no activity")
	}
}

func TestReset(t *testing.T) {
	video := &fakeVideoService{info: sampleInfo()}
	svc, sess := setup(t, video)
	ctx := context.Background()

	_ = svc.SubmitURL(ctx, sess.ID, "https://example.com/v", "/out")
	if err := svc.Reset(ctx, sess.ID); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	snap, _, _ := svc.Snapshot(ctx, sess.ID)
	if snap.URL != "" || snap.Info != nil || snap.State != valueobjects.ViewStateIdle {
		t.Errorf("reset should clear the session: %+v", snap)
	}
	if snap.OutputDir != "/out" {
		t.Error("reset should keep the output dir")
	}
}

func TestSweepIdle(t *testing.T) {
	svc, sess := setup(t, &fakeVideoService{})
	ctx := context.Background()

	sess.UpdatedAt = time.Now().Add(-2 * time.Hour)
	removed, err := svc.SweepIdle(ctx)
	if err != nil {
		t.Fatalf("SweepIdle failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if _, _, err := svc.Snapshot(ctx, sess.ID); !serrors.IsCode(err, serrors.ErrorCodeNotFound) {
		t.Errorf("swept session should be gone, got %v", err)
	}
}
