package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/sheet"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type UploadInput struct {
	FileName   string
	Data       []byte
	Department string
	Batch      string
	Semester   string
}

type ResultService struct {
	Store      store.Store
	Catalog    *catalog.Catalog
	UploadsDir string
	Clock      Clock
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Upload parses a result sheet and replaces the stored sheet for its
// department, batch and semester. The raw file is kept in UploadsDir.
func (s *ResultService) Upload(ctx context.Context, p domain.Principal, in UploadInput) (domain.SheetInfo, error) {
	log := slogx.FromContext(ctx)

	if len(in.Data) == 0 || strings.TrimSpace(in.FileName) == "" {
		return domain.SheetInfo{}, invalidField("file", "No file uploaded")
	}
	if strings.TrimSpace(in.Department) == "" {
		return domain.SheetInfo{}, invalidField("department", "Department is required")
	}
	dept, err := s.Catalog.Lookup(in.Department)
	if err != nil {
		return domain.SheetInfo{}, invalidField("department", "Invalid department")
	}
	key, err := domain.NewSheetKey(dept.Code, in.Batch, in.Semester)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBatch):
			return domain.SheetInfo{}, invalidField("batchNumber", "Batch number must look like 2021-2025")
		case errors.Is(err, domain.ErrInvalidSemester):
			return domain.SheetInfo{}, invalidField("semester", "Semester must be 1-8 or Sem1-Sem8")
		}
		return domain.SheetInfo{}, wrapInvalid(err, err.Error())
	}
	if !p.CanManageDepartment(key.Department) {
		log.Warn("result upload outside own department",
			slog.String("user_id", p.UserID),
			slog.String("department", key.Department),
		)
		return domain.SheetInfo{}, ErrForbidden
	}

	parsed, err := sheet.Parse(in.FileName, in.Data)
	if err != nil {
		var ce *sheet.CellError
		switch {
		case errors.Is(err, sheet.ErrEmpty):
			return domain.SheetInfo{}, wrapInvalid(err, "Excel file is empty or invalid format")
		case errors.Is(err, sheet.ErrLegacyXLS), errors.Is(err, sheet.ErrUnsupported), errors.Is(err, sheet.ErrTooManySubjects):
			return domain.SheetInfo{}, wrapInvalid(err, upperFirst(err.Error()))
		case errors.As(err, &ce):
			return domain.SheetInfo{}, wrapInvalid(err, "Invalid marks at "+ce.Error())
		}
		return domain.SheetInfo{}, err
	}

	now := s.Clock.now()
	stored, err := s.saveUpload(in.FileName, in.Data, now.UnixMilli())
	if err != nil {
		log.Error("failed to save upload", slog.Any("error", err))
		return domain.SheetInfo{}, err
	}

	rs := domain.ResultSheet{
		Key:         key,
		Subjects:    parsed.Subjects,
		Students:    parsed.Students,
		SourceFile:  stored,
		Fingerprint: cryptox.Fingerprint(in.Data),
		UploadedBy:  p.UserID,
		UploadedAt:  now,
	}
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Results().ReplaceSheet(ctx, rs)
	}); err != nil {
		log.Error("failed to store result sheet", slog.String("sheet", key.String()), slog.Any("error", err))
		return domain.SheetInfo{}, err
	}

	log.Info("result sheet stored",
		slog.String("table", key.TableName()),
		slog.Int("students", len(rs.Students)),
		slog.Int("subjects", len(rs.Subjects)),
	)
	return domain.SheetInfo{
		Key:        key,
		TableName:  key.TableName(),
		Subjects:   rs.Subjects,
		Students:   len(rs.Students),
		SourceFile: stored,
		UploadedBy: p.UserID,
		UploadedAt: now,
	}, nil
}

// saveUpload writes the raw upload as <unix-ms>-<name> and returns the
// stored file name.
func (s *ResultService) saveUpload(name string, data []byte, ms int64) (string, error) {
	if s.UploadsDir == "" {
		return filepath.Base(name), nil
	}
	if err := os.MkdirAll(s.UploadsDir, 0o750); err != nil {
		return "", err
	}
	base := unsafeFileChars.ReplaceAllString(filepath.Base(name), "_")
	stored := fmt.Sprintf("%d-%s", ms, base)
	if err := os.WriteFile(filepath.Join(s.UploadsDir, stored), data, 0o640); err != nil {
		return "", err
	}
	return stored, nil
}

func (s *ResultService) GetResults(ctx context.Context, department, batch, semester string) (domain.ResultSheet, error) {
	key, err := s.sheetKey(department, batch, semester)
	if err != nil {
		return domain.ResultSheet{}, err
	}
	rs, err := s.Store.Results().GetSheet(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ResultSheet{}, ErrSheetNotFound
		}
		return domain.ResultSheet{}, err
	}
	return rs, nil
}

func (s *ResultService) ListSheets(ctx context.Context, department, batch string) ([]domain.SheetInfo, error) {
	var f store.SheetFilter
	if department != "" {
		dept, err := s.Catalog.Lookup(department)
		if err != nil {
			return nil, invalidField("department", "Invalid department")
		}
		f.Department = dept.Code
	}
	if batch != "" {
		b, err := domain.ParseBatch(batch)
		if err != nil {
			return nil, invalidField("batch", "Batch must look like 2021-2025")
		}
		f.Batch = b.String()
	}
	return s.Store.Results().ListSheets(ctx, f)
}

func (s *ResultService) sheetKey(department, batch, semester string) (domain.SheetKey, error) {
	if department == "" || batch == "" || semester == "" {
		return domain.SheetKey{}, invalid("department, batch and semester are required")
	}
	dept, err := s.Catalog.Lookup(department)
	if err != nil {
		return domain.SheetKey{}, invalidField("department", "Invalid department")
	}
	key, err := domain.NewSheetKey(dept.Code, batch, semester)
	if err != nil {
		return domain.SheetKey{}, wrapInvalid(err, err.Error())
	}
	return key, nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
