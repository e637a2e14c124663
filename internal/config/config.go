package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Database               Database               `mapstructure:",squash"`
	RfmSegmentationSync    RfmSegmentationSync    `mapstructure:",squash"`
	MenuRecommendationSync MenuRecommendationSync `mapstructure:",squash"`
	Seed                   Seed                   `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type RfmSegmentationSync struct {
	CronSchedule  string `mapstructure:"rfm_segmentation_sync_cron"`
	SyncEnabled   bool   `mapstructure:"rfm_segmentation_sync_enabled"`
	MinPopulation int    `mapstructure:"rfm_segmentation_min_population"`
}

type MenuRecommendationSync struct {
	CronSchedule string `mapstructure:"menu_recommendations_sync_cron"`
	SyncEnabled  bool   `mapstructure:"menu_recommendations_sync_enabled"`
	TopN         int    `mapstructure:"menu_recommendations_top_n"`
}

type Seed struct {
	Users        int `mapstructure:"seed_users"`
	MenuItems    int `mapstructure:"seed_menu_items"`
	Transactions int `mapstructure:"seed_transactions"`
	LookbackDays int `mapstructure:"seed_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cafe")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults para a segmentação RFM
	viper.SetDefault("RFM_SEGMENTATION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RFM_SEGMENTATION_SYNC_ENABLED", false)
	viper.SetDefault("RFM_SEGMENTATION_MIN_POPULATION", 5) // Mínimo para formar 5 quintis

	// Defaults para as recomendações de cardápio
	viper.SetDefault("MENU_RECOMMENDATIONS_SYNC_CRON", "30 2 * * *") // Todos os dias às 2h30 da manhã
	viper.SetDefault("MENU_RECOMMENDATIONS_SYNC_ENABLED", false)
	viper.SetDefault("MENU_RECOMMENDATIONS_TOP_N", 5)

	// Defaults para a carga de dados sintéticos
	viper.SetDefault("SEED_USERS", 100)
	viper.SetDefault("SEED_MENU_ITEMS", 50)
	viper.SetDefault("SEED_TRANSACTIONS", 300)
	viper.SetDefault("SEED_LOOKBACK_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
