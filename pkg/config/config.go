package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Billing BillingConfig
	Auth    AuthConfig
	Seed    SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // info, warn, error
}

// BillingConfig parámetros de facturación.
type BillingConfig struct {
	TaxRate  decimal.Decimal // tasa fraccional, ej. 0.15 = 15%
	UnitCode string          // código reservado del ítem tarifa por unidad ("UNIT")
}

// AuthConfig parámetros del login interactivo.
type AuthConfig struct {
	MaxAttempts int // intentos de login antes de abortar
}

// SeedConfig controla la carga de datos de demostración al arrancar.
type SeedConfig struct {
	DemoData bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, TAX_RATE, LOGIN_MAX_ATTEMPTS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	taxRate, err := getDecimal(v, "TAX_RATE", "0.15")
	if err != nil {
		return nil, fmt.Errorf("TAX_RATE inválido: %w", err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("TAX_RATE no puede ser negativo: %s", taxRate)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "libreria-pos"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Billing: BillingConfig{
			TaxRate:  taxRate,
			UnitCode: getString(v, "BILLING_UNIT_CODE", "UNIT"),
		},
		Auth: AuthConfig{
			MaxAttempts: getInt(v, "LOGIN_MAX_ATTEMPTS", 3),
		},
		Seed: SeedConfig{
			DemoData: getBool(v, "SEED_DEMO_DATA", true),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// getDecimal lee un monto/tasa como string y lo parsea con decimal (evita pasar por float64).
func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	s := getString(v, key, def)
	return decimal.NewFromString(strings.TrimSpace(s))
}
