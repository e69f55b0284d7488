package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	API      API
	Drift    Drift
	Protogen Protogen
}

type API struct {
	Debug     bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	InvestApi InvestApi
}

type InvestApi struct {
	Url   string `env:"INVEST_API_URL" envDefault:"https://api-invest.tinkoff.ru/openapi/sandbox"`
	Token string `env:"INVEST_API_TOKEN" envDefault:""`
}

type Drift struct {
	FixturesDir   string        `env:"DRIFT_FIXTURES_DIR" envDefault:"testdata/fixtures"`
	CheckInterval time.Duration `env:"DRIFT_CHECK_INTERVAL" envDefault:"1h"`
	Watch         bool          `env:"DRIFT_WATCH" envDefault:"false"`
	Parallelism   int           `env:"DRIFT_PARALLELISM" envDefault:"4"`

	// when set, used instead of DRIFT_CHECK_INTERVAL
	CheckCrontab string `env:"DRIFT_CHECK_CRONTAB" envDefault:""`

	// empty value means the report is not saved
	ReportFile string `env:"DRIFT_REPORT_FILE" envDefault:""`

	// contract keys checked against the live api, e.g. "portfolio,user/accounts@v3"
	LiveEndpoints []string `env:"DRIFT_LIVE_ENDPOINTS" envSeparator:"," envDefault:""`
}

type Protogen struct {
	ProtocPath  string `env:"PROTOC_PATH" envDefault:"protoc"`
	IncludeRoot string `env:"PROTO_INCLUDE_ROOT" envDefault:"contracts-repo/src/docs/contracts"`
	OutDir      string `env:"PROTO_OUT_DIR" envDefault:"proto/investapi"`
	GoPackage   string `env:"PROTO_GO_PACKAGE" envDefault:"github.com/KotFed0t/invest_contracts/proto/investapi"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
