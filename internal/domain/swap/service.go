package swap

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/domain/submission"
	"github.com/supermom/supermom-api/internal/domain/theme"
	"github.com/supermom/supermom-api/internal/pkg/card"
	"github.com/supermom/supermom-api/internal/pkg/faceswap"
	"github.com/supermom/supermom-api/internal/pkg/storage"
)

const (
	demoNote    = "Running in instant demo mode. Install the AI engine to swap faces for real."
	failureNote = "AI processing failed. Showing the theme template instead."
)

// SubmissionRecorder persists completed transformations
type SubmissionRecorder interface {
	Create(ctx context.Context, s *submission.Submission) error
}

// Service orchestrates the full transformation: face swap, greeting card,
// blob upload, and the submission record
type Service struct {
	themes      *theme.Service
	uploads     *storage.LocalStorage
	results     *storage.LocalStorage
	transformer faceswap.Transformer
	cards       *card.Generator
	blobs       storage.BlobUploader
	submissions SubmissionRecorder
	timeout     time.Duration
}

// NewService creates swap service. blobs and submissions may be nil when
// R2 or the database are not configured; both are best-effort.
func NewService(
	themes *theme.Service,
	uploads, results *storage.LocalStorage,
	transformer faceswap.Transformer,
	cards *card.Generator,
	blobs storage.BlobUploader,
	submissions SubmissionRecorder,
	timeout time.Duration,
) *Service {
	return &Service{
		themes:      themes,
		uploads:     uploads,
		results:     results,
		transformer: transformer,
		cards:       cards,
		blobs:       blobs,
		submissions: submissions,
		timeout:     timeout,
	}
}

// Transform runs the swap pipeline. Engine failures and timeouts degrade to
// the theme template; only a missing source or template is an error.
func (s *Service) Transform(ctx context.Context, req TransformRequest) (*TransformResult, error) {
	source := filepath.Base(req.Filename)
	if !s.uploads.Exists(source) {
		return nil, ErrSourceNotFound
	}

	th, templatePath, err := s.themes.Resolve(req.Theme())
	if err != nil {
		return nil, ErrTemplateNotFound
	}

	resultName := "result_" + uuid.New().String() + ".png"
	resultPath := s.results.Path(resultName)

	demo := false
	note := ""

	if !s.transformer.Available() {
		if err := copyFile(templatePath, resultPath); err != nil {
			return nil, err
		}
		demo = true
		note = demoNote
	} else {
		runCtx, cancel := context.WithTimeout(ctx, s.timeout)
		runErr := s.transformer.Run(runCtx, s.uploads.Path(source), templatePath, resultPath)
		cancel()

		if runErr == nil {
			if _, statErr := os.Stat(resultPath); statErr != nil {
				runErr = statErr
			}
		}
		if runErr != nil {
			log.Warn().Err(runErr).Str("theme", th.ID).Msg("Swap degraded to template")
			if err := copyFile(templatePath, resultPath); err != nil {
				return nil, err
			}
			demo = true
			note = failureNote
		}
	}

	finalName := resultName
	finalPath := resultPath

	if story := strings.TrimSpace(req.Story); story != "" {
		cardName := "card_" + uuid.New().String() + ".jpg"
		cardReq := card.Request{
			ImagePath:  resultPath,
			Story:      story,
			OutputPath: s.results.Path(cardName),
		}
		if req.MomName != "" {
			cardReq.Greeting = &card.Greeting{Name: req.MomName, Nickname: req.Nickname}
		}

		if res := s.cards.Generate(cardReq); !res.Degraded {
			finalName = cardName
			finalPath = res.Path
		}
	}

	blobURL := s.uploadBlob(ctx, finalName, finalPath)
	s.recordSubmission(req, th, source, finalName, blobURL)

	return &TransformResult{
		ImageURL: s.results.GetURL(finalName),
		BlobURL:  blobURL,
		Theme:    th,
		Demo:     demo,
		Note:     note,
	}, nil
}

// uploadBlob pushes the final image to durable storage so the share links
// outlive the local cleanup sweep. Failures only cost the blob URL.
func (s *Service) uploadBlob(ctx context.Context, name, path string) string {
	if s.blobs == nil {
		return ""
	}

	url, err := s.blobs.UploadFile(ctx, name, path)
	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("Blob upload failed")
		return ""
	}
	return url
}

// recordSubmission writes the submission row in the background; the HTTP
// response never waits on the database
func (s *Service) recordSubmission(req TransformRequest, th theme.Theme, source, result, blobURL string) {
	if s.submissions == nil {
		return
	}

	sub := &submission.Submission{
		UserIdentifier:  req.Identifier,
		SourceImagePath: nullString(source),
		ThemeID:         nullString(th.ID),
		ThemeName:       nullString(th.Name),
		MomStory:        nullString(strings.TrimSpace(req.Story)),
		ResultImagePath: nullString(result),
		ResultBlobURL:   nullString(blobURL),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.submissions.Create(ctx, sub); err != nil {
			log.Error().Err(err).Msg("Failed to record submission")
		}
	}()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
