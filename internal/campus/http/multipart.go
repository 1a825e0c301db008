package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

// multipartMemory is how much of a form is held in memory before parts
// spill to temporary files.
const multipartMemory = 8 << 20

// parseMultipart caps the body at limit and parses the form.
func parseMultipart(w http.ResponseWriter, r *http.Request, limit int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return r.ParseMultipartForm(multipartMemory)
}

// readPart reads one uploaded file. A missing part yields empty values.
func readPart(r *http.Request, field string) (name string, data []byte, err error) {
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	return hdr.Filename, data, err
}

func readHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// writeFormError reports a multipart body that could not be parsed.
func writeFormError(w http.ResponseWriter, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeDecodeError(w, err)
		return
	}
	writeBadRequest(w, "Request must be multipart/form-data")
}
