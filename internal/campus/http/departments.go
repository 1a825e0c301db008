package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// DepartmentsHandler godoc
//
//	@Summary		List departments
//	@Description	Returns the department catalog in its configured order.
//	@Tags			Departments
//	@Produce		json
//	@Success		200	{array}	campussdk.Department	"departments"
//	@Router			/api/departments [get].
func DepartmentsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := cat.All()
		out := make([]campussdk.Department, len(all))
		for i, d := range all {
			out[i] = campussdk.Department{Code: d.Code, Name: d.Name}
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
