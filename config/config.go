package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruit-flow" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	AI struct {
		// gemini or yandex
		Provider       string `default:"gemini" env:"AI_PROVIDER"`
		RequestTimeout int    `default:"90" env:"AI_REQUEST_TIMEOUT_SEC"`
		Gemini         struct {
			APIKey string `default:"" env:"GEMINI_API_KEY"`
			Model  string `default:"gemini-2.0-flash" env:"GEMINI_MODEL"`
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YAGPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
		}
	}
	Knowledge struct {
		JobRequirementsPath    string `default:"knowledge/job_requirements.json" env:"KNOWLEDGE_JOB_REQUIREMENTS"`
		EvaluationTemplatePath string `default:"knowledge/evaluation_template.json" env:"KNOWLEDGE_EVALUATION_TEMPLATE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"resumes" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
