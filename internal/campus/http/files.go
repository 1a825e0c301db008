package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

// FileHandler serves generated documents from dir by bare file name.
func FileHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("file")
		if dir == "" || name == "" || strings.HasPrefix(name, ".") ||
			strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			campussdk.ErrNotFound.WithDescription("File not found").WriteError(w)
			return
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			campussdk.ErrNotFound.WithDescription("File not found").WriteError(w)
			return
		}
		http.ServeFile(w, r, path)
	})
}
