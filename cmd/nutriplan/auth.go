package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
	"github.com/nutriplan/nutriplan-cli/internal/service"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		email := loginEmail
		password := loginPassword
		if email == "" {
			email = prompt("Email: ")
		}
		if password == "" {
			password = prompt("Password: ")
		}
		if email == "" || password == "" {
			return errors.New("email and password are required")
		}

		if err := a.session.Login(cmd.Context(), email, password); err != nil {
			return errors.New("login failed")
		}
		return nil
	},
}

var registerFlags struct {
	name     string
	email    string
	password string
	age      int
	height   float64
	weight   float64
	goal     string
	activity string
	diet     string
	gender   string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		f := registerFlags
		if f.name == "" || f.email == "" || f.password == "" {
			return errors.New("--name, --email and --password are required")
		}

		req := apiclient.RegisterRequest{
			Name:          f.name,
			Email:         f.email,
			Password:      f.password,
			Age:           f.age,
			Height:        f.height,
			Weight:        f.weight,
			Goal:          models.Goal(f.goal),
			ActivityLevel: models.ActivityLevel(f.activity),
			DietType:      models.DietType(f.diet),
			Gender:        models.Gender(f.gender),
		}

		if err := a.session.Register(cmd.Context(), req); err != nil {
			return errors.New("registration failed")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Logout(cmd.Context())
		fmt.Println("Logged out.")
		return nil
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Session management",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.session.Resolve(cmd.Context())

		switch a.session.State() {
		case service.StateAuthenticated:
			user := a.session.User()
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			if exp, ok := a.session.TokenExpiry(); ok {
				fmt.Printf("Session expires %s\n", exp.Local().Format(time.RFC1123))
			}
		default:
			fmt.Println("Not logged in.")
		}
		return nil
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")

	registerCmd.Flags().StringVar(&registerFlags.name, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "Account password")
	registerCmd.Flags().IntVar(&registerFlags.age, "age", 25, "Age in years")
	registerCmd.Flags().Float64Var(&registerFlags.height, "height", 170, "Height in cm")
	registerCmd.Flags().Float64Var(&registerFlags.weight, "weight", 70, "Weight in kg")
	registerCmd.Flags().StringVar(&registerFlags.goal, "goal", string(models.DefaultProfile.Goal), "Goal: weight_loss, maintenance or weight_gain")
	registerCmd.Flags().StringVar(&registerFlags.activity, "activity", string(models.DefaultProfile.ActivityLevel), "Activity level: sedentary, light, moderate, active or very_active")
	registerCmd.Flags().StringVar(&registerFlags.diet, "diet", string(models.DefaultProfile.DietType), "Diet type: veg, non_veg, vegan, keto, paleo or balanced")
	registerCmd.Flags().StringVar(&registerFlags.gender, "gender", string(models.DefaultProfile.Gender), "Gender: male or female")

	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, authCmd)
}
