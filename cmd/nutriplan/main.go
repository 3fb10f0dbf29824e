package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutriplan/nutriplan-cli/config"
	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/service"
	"github.com/nutriplan/nutriplan-cli/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "nutriplan",
	Short:        "NutriPlan diet-planning client",
	Long:         `Terminal client for the NutriPlan diet-planning API: manage your account, weekly meal plan, and ask the nutrition assistant.`,
	SilenceUsage: true,
}

// app wires the client stack together: config, local state store, HTTP
// client, session manager, plan workflow, chat
type app struct {
	cfg      *config.Config
	store    *store.Store
	client   *apiclient.Client
	notifier *service.TerminalNotifier
	session  *service.SessionManager
	plan     *service.PlanWorkflow
	chat     *service.ChatService
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.EnsureStateDir(); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	st, err := store.Open(cfg.StatePath("state.db"))
	if err != nil {
		return nil, err
	}

	client := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, st)
	client.OnUnauthorized(func() {
		if err := st.ClearToken(); err != nil {
			log.Printf("failed to clear credential: %v", err)
		}
	})

	notifier := service.NewTerminalNotifier(os.Stdout, os.Stderr)
	session := service.NewSessionManager(client, st, notifier, service.NopNavigator{})
	workflow := service.NewPlanWorkflow(client, session, notifier, st)
	chat := service.NewChatService(client, notifier)

	return &app{
		cfg:      cfg,
		store:    st,
		client:   client,
		notifier: notifier,
		session:  session,
		plan:     workflow,
		chat:     chat,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("failed to close state store: %v", err)
	}
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
