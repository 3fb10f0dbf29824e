package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Resolve(cmd.Context())
		user := a.session.User()
		if user == nil {
			return errors.New("not logged in")
		}

		// Keep a local copy for offline inspection
		if err := a.store.SaveProfile(*user); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to cache profile: %v\n", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Name:\t%s\n", user.Name)
		fmt.Fprintf(w, "Email:\t%s\n", user.Email)
		fmt.Fprintf(w, "Age:\t%d\n", user.Age)
		fmt.Fprintf(w, "Height:\t%.0f cm\n", user.Height)
		fmt.Fprintf(w, "Weight:\t%.1f kg\n", user.Weight)
		fmt.Fprintf(w, "Goal:\t%s\n", user.Goal)
		fmt.Fprintf(w, "Activity:\t%s\n", user.ActivityLevel)
		fmt.Fprintf(w, "Diet:\t%s\n", user.DietType)
		fmt.Fprintf(w, "Gender:\t%s\n", user.Gender)
		return w.Flush()
	},
}

var profileUpdateFlags struct {
	name     string
	email    string
	age      int
	height   float64
	weight   float64
	goal     string
	activity string
	diet     string
	gender   string
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; only provided flags are sent",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Resolve(cmd.Context())
		if a.session.User() == nil {
			return errors.New("not logged in")
		}

		var update apiclient.ProfileUpdate
		flags := cmd.Flags()
		if flags.Changed("name") {
			update.Name = &profileUpdateFlags.name
		}
		if flags.Changed("email") {
			update.Email = &profileUpdateFlags.email
		}
		if flags.Changed("age") {
			update.Age = &profileUpdateFlags.age
		}
		if flags.Changed("height") {
			update.Height = &profileUpdateFlags.height
		}
		if flags.Changed("weight") {
			update.Weight = &profileUpdateFlags.weight
		}
		if flags.Changed("goal") {
			goal := models.Goal(profileUpdateFlags.goal)
			update.Goal = &goal
		}
		if flags.Changed("activity") {
			activity := models.ActivityLevel(profileUpdateFlags.activity)
			update.ActivityLevel = &activity
		}
		if flags.Changed("diet") {
			diet := models.DietType(profileUpdateFlags.diet)
			update.DietType = &diet
		}
		if flags.Changed("gender") {
			gender := models.Gender(profileUpdateFlags.gender)
			update.Gender = &gender
		}

		if err := a.session.UpdateProfile(cmd.Context(), update); err != nil {
			return errors.New("profile update failed")
		}
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.name, "name", "", "Full name")
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.email, "email", "", "Account email")
	profileUpdateCmd.Flags().IntVar(&profileUpdateFlags.age, "age", 0, "Age in years")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.height, "height", 0, "Height in cm")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.weight, "weight", 0, "Weight in kg")
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.goal, "goal", "", "Goal: weight_loss, maintenance or weight_gain")
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.activity, "activity", "", "Activity level: sedentary, light, moderate, active or very_active")
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.diet, "diet", "", "Diet type: veg, non_veg, vegan, keto, paleo or balanced")
	profileUpdateCmd.Flags().StringVar(&profileUpdateFlags.gender, "gender", "", "Gender: male or female")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
