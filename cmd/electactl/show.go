package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/electa/internal/catalog"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

var showCatalogPath string

var showCmd = &cobra.Command{
	Use:   "show <course-no>",
	Short: "Print one canonical course record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadCache(showCatalogPath)
		if err != nil {
			return err
		}

		rec, ok := cat.ByCourseNo(args[0])
		if !ok {
			return apperrors.NewCustomError(apperrors.ErrCourseNotFound,
				fmt.Sprintf("course %s not found in %s", args[0], showCatalogPath))
		}

		slot := "-"
		if rec.Slot != nil {
			slot = *rec.Slot
		}
		prereqs := "-"
		if len(rec.Prerequisites) > 0 {
			prereqs = strings.Join(rec.Prerequisites, ", ")
		}

		cmd.Printf("%s  %s\n", rec.CourseNo, rec.CourseName)
		cmd.Printf("  department:    %s\n", rec.Department)
		cmd.Printf("  semester:      %d\n", rec.Semester)
		cmd.Printf("  category:      %s (%s)\n", rec.Category, rec.CourseType)
		cmd.Printf("  slot:          %s\n", slot)
		cmd.Printf("  prerequisites: %s\n", prereqs)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showCatalogPath, "catalog", "data/master_course_catalog.csv", "canonical catalog path")
	rootCmd.AddCommand(showCmd)
}
