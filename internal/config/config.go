package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser                 string `env:"DB_USER"`
	DBPassword             string `env:"DB_PASSWORD"`
	DBHost                 string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	EnquiryFrom string `env:"ENQUIRY_FROM" envDefault:"do-not-reply@example.com"`
	EnquiryTo   string `env:"ENQUIRY_TO"`

	UploadsDir string `env:"UPLOADS_DIR" envDefault:"public/uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBConfigured reports whether enough settings exist to attempt a MySQL connection.
func (c *Config) DBConfigured() bool {
	return c.DBUser != "" && c.DBName != "" && (c.DBHost != "" || c.InstanceConnectionName != "")
}

// SMTPConfigured reports whether the enquiry mailer can be initialized.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}
