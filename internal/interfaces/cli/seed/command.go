package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"grievance/internal/infrastructure/config"
	"grievance/internal/infrastructure/database"
	"grievance/internal/infrastructure/persistence/seeds"
	"grievance/internal/shared/logger"
)

var (
	env         string
	fixtureFile string

	adminSRCode    string
	adminEmail     string
	adminPassword  string
	adminFirstName string
	adminLastName  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Populate the database with default concern categories, offices, and optionally an admin account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newDefaultsCommand(),
		newAdminCommand(),
	)

	return cmd
}

func newDefaultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Seed default categories and offices",
		Long:  `Insert the default concern categories and offices. Existing rows with the same name are left untouched.`,
		RunE:  runDefaults,
	}

	cmd.Flags().StringVarP(&fixtureFile, "file", "f", "", "Path to a YAML fixture file (defaults to the embedded fixtures)")

	return cmd
}

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin user",
		Long:  `Create an admin account with a verified email. If a user with the given email already exists, nothing is changed.`,
		RunE:  runAdmin,
	}

	cmd.Flags().StringVar(&adminSRCode, "sr-code", "00-00001", "SR code for the admin account")
	cmd.Flags().StringVar(&adminEmail, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&adminPassword, "password", "", "Password (required)")
	cmd.Flags().StringVar(&adminFirstName, "first-name", "System", "First name")
	cmd.Flags().StringVar(&adminLastName, "last-name", "Administrator", "Last name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return log, nil
}

func runDefaults(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if fixtureFile != "" {
		log.Infow("seeding from fixture file", "file", fixtureFile)
		if err := seeds.SeedFromFile(database.Get(), fixtureFile); err != nil {
			log.Errorw("seeding failed", "error", err)
			return fmt.Errorf("seeding failed: %w", err)
		}
	} else {
		log.Infow("seeding default categories and offices")
		if err := seeds.SeedDefaults(database.Get()); err != nil {
			log.Errorw("seeding failed", "error", err)
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	log.Infow("seeding completed successfully")
	return nil
}

func runAdmin(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("creating admin user", "email", adminEmail)

	if err := seeds.SeedAdminUser(database.Get(), adminSRCode, adminEmail, adminPassword, adminFirstName, adminLastName); err != nil {
		log.Errorw("admin seeding failed", "error", err)
		return fmt.Errorf("admin seeding failed: %w", err)
	}

	log.Infow("admin user ready", "email", adminEmail)
	return nil
}
