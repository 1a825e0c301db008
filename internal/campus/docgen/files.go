package docgen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile renders into a temporary file next to path and renames it into
// place, so readers never see a half-written report.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := render(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteReport writes doc as <base>.pdf and <base>.docx inside dir and
// returns the two file names.
func WriteReport(dir, base string, doc Document) (pdfName, docxName string, err error) {
	pdfName, docxName = base+".pdf", base+".docx"
	if err := WriteFile(filepath.Join(dir, pdfName), func(w io.Writer) error { return RenderPDF(w, doc) }); err != nil {
		return "", "", err
	}
	if err := WriteFile(filepath.Join(dir, docxName), func(w io.Writer) error { return RenderDOCX(w, doc) }); err != nil {
		return "", "", err
	}
	return pdfName, docxName, nil
}

// PromoteReport renames <from>.pdf and <from>.docx inside dir to <to>.pdf and
// <to>.docx, replacing any existing files.
func PromoteReport(dir, from, to string) (pdfName, docxName string, err error) {
	pdfName, docxName = to+".pdf", to+".docx"
	if err := os.Rename(filepath.Join(dir, from+".pdf"), filepath.Join(dir, pdfName)); err != nil {
		return "", "", err
	}
	if err := os.Rename(filepath.Join(dir, from+".docx"), filepath.Join(dir, docxName)); err != nil {
		return "", "", err
	}
	return pdfName, docxName, nil
}

// RemoveReport deletes <base>.pdf and <base>.docx inside dir, ignoring files
// that are already gone.
func RemoveReport(dir, base string) error {
	var errs []error
	for _, name := range []string{base + ".pdf", base + ".docx"} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
