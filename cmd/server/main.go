package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aistudio/internal/analytics"
	"aistudio/internal/assistant"
	"aistudio/internal/config"
	"aistudio/internal/db"
	"aistudio/internal/generate"
	"aistudio/internal/models"
	"aistudio/internal/notify"
	"aistudio/internal/server"
	"aistudio/internal/session"
	"aistudio/internal/store"
	"aistudio/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "aistudio",
	Short: "AI Studio social content management server",
	Long: `AI Studio serves the JSON API behind the content dashboard:
session management, the post scheduling workflow, and the mocked
generation, assistant, and analytics services.`,
	RunE: runServe,
}

func init() {
	cobra.OnInitialize(func() {
		config.Init(viper.GetString("config"))
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default ./config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := run(cfg); err != nil {
		return err
	}
	return nil
}

func run(cfg *config.Config) error {
	if err := models.CheckPlatformTables(); err != nil {
		return err
	}

	database, err := db.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer database.Close()

	notifier := notify.Log{}
	now := time.Now()

	sessions := session.NewManager(store.NewKV(database), notifier)
	if err := sessions.Restore(); err != nil {
		// A failed restore resolves to anonymous; the server still starts.
		log.Printf("session restore: %v", err)
	}

	mock := &generate.Mock{Delay: cfg.Mock.GenerateDelay()}
	engine := workflow.NewEngine(store.NewCatalog(now), mock, mock, notifier)
	metrics := analytics.NewStore(now, cfg.Mock.AnalyticsSeed)
	chat := assistant.NewConversation(assistant.WithDelay(cfg.Mock.AssistantDelay()))

	srv := server.New(sessions, engine, metrics, chat)
	log.Printf("listening on :%s", cfg.Server.Port)
	return http.ListenAndServe(":"+cfg.Server.Port, srv)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
