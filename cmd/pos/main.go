package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Libreria-pos/internal/application/auth"
	appbilling "github.com/jhoicas/Libreria-pos/internal/application/billing"
	"github.com/jhoicas/Libreria-pos/internal/domain/billing"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/memory"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/seed"
	"github.com/jhoicas/Libreria-pos/internal/interfaces/console"
	"github.com/jhoicas/Libreria-pos/pkg/config"
	"github.com/jhoicas/Libreria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tax_rate", cfg.Billing.TaxRate.String()).
		Msg("iniciando aplicación")

	// Stores en memoria: el estado vive solo durante el proceso.
	customerRepo := memory.NewCustomerRepository()
	itemRepo := memory.NewItemRepository()
	billRepo := memory.NewBillRepository()
	userRepo := memory.NewUserRepository()

	authUC := auth.NewAuthUseCase(userRepo)
	customerUC := appbilling.NewCustomerUseCase(customerRepo)
	itemUC := appbilling.NewItemUseCase(itemRepo)
	generateUC := appbilling.NewGenerateBillUseCase(
		customerRepo, itemRepo, billRepo,
		billing.NewEngine(nil, nil),
		appbilling.Config{
			TaxRate:  cfg.Billing.TaxRate,
			UnitCode: cfg.Billing.UnitCode,
		},
	)

	if cfg.Seed.DemoData {
		if err := seed.Demo(authUC, customerUC, itemUC); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	shell := console.NewShell(
		os.Stdin, os.Stdout,
		authUC, customerUC, itemUC, generateUC,
		log,
		console.Config{
			AppName:     cfg.App.Name,
			MaxAttempts: cfg.Auth.MaxAttempts,
		},
	)

	if !shell.Login() {
		fmt.Println("\nDemasiados intentos fallidos. Saliendo.")
		os.Exit(1)
	}
	shell.Run()
}
