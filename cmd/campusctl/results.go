package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/campus/internal/campus/service"
)

var importFlags struct {
	department string
	batch      string
	semester   string
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage result sheets",
}

var resultsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import an .xlsx or .csv result sheet",
	Long: `Import a result sheet exactly as an upload through the API would, replacing
any sheet already stored for the department, batch and semester.

Example:
  campusctl results import --department CSE --batch 2021-2025 --semester 3 sem3.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runResultsImport,
}

func init() {
	f := resultsImportCmd.Flags()
	f.StringVar(&importFlags.department, "department", "", "department code (required)")
	f.StringVar(&importFlags.batch, "batch", "", "batch, e.g. 2021-2025 (required)")
	f.StringVar(&importFlags.semester, "semester", "", "1-8 or Sem1-Sem8 (required)")
	_ = resultsImportCmd.MarkFlagRequired("department")
	_ = resultsImportCmd.MarkFlagRequired("batch")
	_ = resultsImportCmd.MarkFlagRequired("semester")

	resultsCmd.AddCommand(resultsImportCmd)
}

func runResultsImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	results := &service.ResultService{Store: e.store, Catalog: e.catalog, UploadsDir: e.cfg.UploadsDir}

	info, err := results.Upload(cmd.Context(), service.Operator, service.UploadInput{
		FileName:   filepath.Base(args[0]),
		Data:       data,
		Department: importFlags.department,
		Batch:      importFlags.batch,
		Semester:   importFlags.semester,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], plainError(err))
	}
	printf(cmd, "stored %s: %d student(s), %d subject(s)\n", info.TableName, info.Students, len(info.Subjects))
	return nil
}
