package config

import "text/template"

// server configuration read from the environment
type Config struct {
	Project        string   `env:"GOOGLE_CLOUD_PROJECT" env-required:"true" env-description:"Google Cloud project hosting Vertex AI and the search engines"`
	Location       string   `env:"VERTEX_LOCATION" env-default:"us-central1" env-description:"Vertex AI region for Gemini and chat-bison"`
	SearchLocation string   `env:"SEARCH_LOCATION" env-default:"global" env-description:"Discovery Engine location"`
	Port           string   `env:"PORT" env-default:"8080" env-description:"HTTP listen port"`
	Environment    string   `env:"ENVIRONMENT" env-default:"development" env-description:"development or production"`
	LogLevel       string   `env:"LOG_LEVEL" env-description:"debug, info, warn or error"`
	PromptsPath    string   `env:"PROMPTS_PATH" env-description:"YAML file replacing the built-in prompts"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*" env-description:"origins allowed by CORS"`
}

// prompt text sent to the hosted models
type Prompts struct {
	Bison BisonPrompt `yaml:"bison"`
	SQL   SQLPrompt   `yaml:"sql"`

	sqlTemplate *template.Template
}

// on-disk shape of the prompts file
type promptFile struct {
	Bison BisonPrompt `yaml:"bison"`
	SQL   SQLPrompt   `yaml:"sql"`
}

// context and few-shot examples seeding every chat-bison session
type BisonPrompt struct {
	Context  string    `yaml:"context"`
	Examples []Example `yaml:"examples"`
}

// one input/output pair shown to chat-bison
type Example struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// natural language to SQL template, rendered with {{.Query}}
type SQLPrompt struct {
	Template string `yaml:"template"`
}
