package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/nutriplan-cli/internal/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "View and regenerate your weekly meal plan",
}

var planShowCached bool

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if planShowCached {
			plan, found, err := a.store.LatestCachedPlan()
			if err != nil {
				return err
			}
			if !found {
				return errors.New("no cached plan; run `nutriplan plan show` while online first")
			}
			printPlan(&plan)
			return nil
		}

		// Resolving the identity makes the workflow fetch the plan
		a.session.Resolve(cmd.Context())
		if a.session.User() == nil {
			return errors.New("not logged in")
		}
		if msg := a.plan.Err(); msg != "" {
			return errors.New("plan fetch failed")
		}

		plan := a.plan.Plan()
		if plan == nil {
			fmt.Println("No meal plan yet. Run `nutriplan plan generate` to create one.")
			return nil
		}
		printPlan(plan)
		return nil
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and save a meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Resolve(cmd.Context())
		a.plan.GeneratePlan(cmd.Context())
		if msg := a.plan.Err(); msg != "" || a.plan.Plan() == nil {
			return errors.New("plan generation failed")
		}
		printPlan(a.plan.Plan())
		return nil
	},
}

var planRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Delete the saved plan and generate a fresh one",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Resolve(cmd.Context())
		a.plan.RegeneratePlan(cmd.Context())
		if msg := a.plan.Err(); msg != "" || a.plan.Plan() == nil {
			return errors.New("plan regeneration failed")
		}
		printPlan(a.plan.Plan())
		return nil
	},
}

func printPlan(plan *models.MealPlan) {
	fmt.Printf("Meal plan created %s\n\n", plan.CreatedAt.Local().Format("Mon, 02 Jan 2006"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, day := range plan.Week {
		fmt.Fprintf(w, "%s\t%d kcal\tP %.0fg / C %.0fg / F %.0fg\n",
			day.Day, day.TotalCalories, day.Macros.Protein, day.Macros.Carbs, day.Macros.Fat)
		for _, slot := range models.MealSlots {
			for _, entry := range day.Meals[slot] {
				fmt.Fprintf(w, "  %s\t%s\t%d kcal\n", slot, entry.Name, entry.Calories)
			}
		}
	}
	w.Flush()
}

func init() {
	planShowCmd.Flags().BoolVar(&planShowCached, "cached", false, "Show the locally cached plan without contacting the API")

	planCmd.AddCommand(planShowCmd, planGenerateCmd, planRegenerateCmd)
	rootCmd.AddCommand(planCmd)
}
