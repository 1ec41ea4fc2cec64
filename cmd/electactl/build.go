package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/electa/internal/catalog"
)

var buildFlags struct {
	semWise     string
	slotWise    string
	courseTypes string
	out         string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge the source tables into the canonical catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Build(catalog.Sources{
			SemWisePath:     buildFlags.semWise,
			SlotWisePath:    buildFlags.slotWise,
			CourseTypesPath: buildFlags.courseTypes,
		})
		if err != nil {
			return err
		}

		if err := catalog.WriteCache(cat, buildFlags.out); err != nil {
			return err
		}

		cmd.Printf("Merged %d canonical courses into %s\n", cat.Len(), buildFlags.out)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildFlags.semWise, "sem-wise", "data/sem_wise_details.csv", "semester-assignment source CSV")
	buildCmd.Flags().StringVar(&buildFlags.slotWise, "slot-wise", "data/slotwise_details_cleaned.csv", "slot/prerequisite source CSV")
	buildCmd.Flags().StringVar(&buildFlags.courseTypes, "course-types", "data/course_type.csv", "category-to-type lookup CSV")
	buildCmd.Flags().StringVar(&buildFlags.out, "out", "data/master_course_catalog.csv", "canonical catalog output path")
	rootCmd.AddCommand(buildCmd)
}
