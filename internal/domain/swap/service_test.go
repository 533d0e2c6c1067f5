package swap

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/supermom/supermom-api/internal/domain/submission"
	"github.com/supermom/supermom-api/internal/domain/theme"
	"github.com/supermom/supermom-api/internal/pkg/card"
	"github.com/supermom/supermom-api/internal/pkg/storage"
)

type fakeTransformer struct {
	available bool
	err       error
	ran       bool
}

func (f *fakeTransformer) Available() bool { return f.available }

func (f *fakeTransformer) Run(ctx context.Context, source, target, output string) error {
	f.ran = true
	if f.err != nil {
		return f.err
	}
	// Behave like the real engine: write the output file
	in, err := os.ReadFile(target)
	if err != nil {
		return err
	}
	return os.WriteFile(output, in, 0o644)
}

type fakeRecorder struct {
	recorded chan *submission.Submission
}

func (f *fakeRecorder) Create(ctx context.Context, s *submission.Submission) error {
	f.recorded <- s
	return nil
}

type testEnv struct {
	svc     *Service
	uploads *storage.LocalStorage
	results *storage.LocalStorage
}

func newTestEnv(t *testing.T, tr *fakeTransformer, rec SubmissionRecorder) *testEnv {
	t.Helper()
	root := t.TempDir()

	templateDir := filepath.Join(root, "templates")
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	tmpl := imaging.New(400, 500, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if err := imaging.Save(tmpl, filepath.Join(templateDir, theme.DefaultTemplateFile)); err != nil {
		t.Fatal(err)
	}

	uploads, err := storage.NewLocalStorage(filepath.Join(root, "uploads"), "/uploads")
	if err != nil {
		t.Fatal(err)
	}
	results, err := storage.NewLocalStorage(filepath.Join(root, "results"), "/results")
	if err != nil {
		t.Fatal(err)
	}

	src := imaging.New(300, 300, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if err := imaging.Save(src, filepath.Join(uploads.BasePath(), "photo.jpg")); err != nil {
		t.Fatal(err)
	}

	themes := theme.NewService(templateDir, "/templates", time.Minute)
	svc := NewService(themes, uploads, results, tr, card.NewGenerator(), nil, rec, time.Second)

	return &testEnv{svc: svc, uploads: uploads, results: results}
}

func TestTransformDemoMode(t *testing.T) {
	tr := &fakeTransformer{available: false}
	env := newTestEnv(t, tr, nil)

	res, err := env.svc.Transform(context.Background(), TransformRequest{Filename: "photo.jpg"})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if !res.Demo {
		t.Error("unavailable engine should flag demo mode")
	}
	if res.Note == "" {
		t.Error("demo mode should carry a note")
	}
	if tr.ran {
		t.Error("engine must not run when unavailable")
	}
	if !strings.HasPrefix(res.ImageURL, "/results/result_") {
		t.Errorf("image url = %q", res.ImageURL)
	}
	if !env.results.Exists(filepath.Base(res.ImageURL)) {
		t.Error("result file missing")
	}
}

func TestTransformSuccess(t *testing.T) {
	tr := &fakeTransformer{available: true}
	env := newTestEnv(t, tr, nil)

	res, err := env.svc.Transform(context.Background(), TransformRequest{Filename: "photo.jpg"})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if res.Demo {
		t.Error("successful swap should not be demo")
	}
	if !tr.ran {
		t.Error("engine should have run")
	}
	if res.Theme.ID != theme.DefaultThemeID {
		t.Errorf("theme = %q", res.Theme.ID)
	}
}

func TestTransformEngineFailureFallsBack(t *testing.T) {
	tr := &fakeTransformer{available: true, err: errors.New("boom")}
	env := newTestEnv(t, tr, nil)

	res, err := env.svc.Transform(context.Background(), TransformRequest{Filename: "photo.jpg"})
	if err != nil {
		t.Fatalf("engine failure must still produce a result: %v", err)
	}

	if !res.Demo {
		t.Error("failed swap should degrade to demo")
	}
	if !env.results.Exists(filepath.Base(res.ImageURL)) {
		t.Error("template fallback file missing")
	}
}

func TestTransformMissingSource(t *testing.T) {
	env := newTestEnv(t, &fakeTransformer{}, nil)

	_, err := env.svc.Transform(context.Background(), TransformRequest{Filename: "nope.jpg"})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestTransformSanitizesSourcePath(t *testing.T) {
	env := newTestEnv(t, &fakeTransformer{}, nil)

	// Traversal attempts collapse to the bare filename
	res, err := env.svc.Transform(context.Background(), TransformRequest{
		Filename: "../../uploads/photo.jpg",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if res.ImageURL == "" {
		t.Error("expected a result")
	}
}

func TestTransformWithStoryProducesCard(t *testing.T) {
	env := newTestEnv(t, &fakeTransformer{available: true}, nil)

	res, err := env.svc.Transform(context.Background(), TransformRequest{
		Filename: "photo.jpg",
		Story:    "To the world you are a mother, to us a superhero.",
		MomName:  "Amina",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	name := filepath.Base(res.ImageURL)
	if !strings.HasPrefix(name, "card_") {
		t.Errorf("story should yield a card image, got %q", name)
	}
	if !env.results.Exists(name) {
		t.Error("card file missing")
	}
}

func TestTransformRecordsSubmission(t *testing.T) {
	rec := &fakeRecorder{recorded: make(chan *submission.Submission, 1)}
	env := newTestEnv(t, &fakeTransformer{available: true}, rec)

	_, err := env.svc.Transform(context.Background(), TransformRequest{
		Filename:   "photo.jpg",
		Identifier: "mom@example.com",
		Story:      "Best mom",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	select {
	case sub := <-rec.recorded:
		if sub.UserIdentifier != "mom@example.com" {
			t.Errorf("identifier = %q", sub.UserIdentifier)
		}
		if !sub.MomStory.Valid || sub.MomStory.String != "Best mom" {
			t.Errorf("story = %+v", sub.MomStory)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("submission was never recorded")
	}
}
