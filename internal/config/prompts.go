package config

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// loads prompts from path, or the built-in set when path is empty
func LoadPrompts(path string) (*Prompts, error) {
	var file promptFile

	if path == "" {
		if err := yaml.Unmarshal(defaultPrompts, &file); err != nil {
			return nil, fmt.Errorf("failed to parse built-in prompts: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, &file); err != nil {
			return nil, fmt.Errorf("failed to read prompts from %s: %w", path, err)
		}
	}

	p := &Prompts{Bison: file.Bison, SQL: file.SQL}
	if err := p.compile(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prompts) compile() error {
	if strings.TrimSpace(p.Bison.Context) == "" {
		return fmt.Errorf("prompts: bison.context must not be empty")
	}

	if strings.TrimSpace(p.SQL.Template) == "" {
		return fmt.Errorf("prompts: sql.template must not be empty")
	}

	tmpl, err := template.New("sql").Option("missingkey=error").Parse(p.SQL.Template)
	if err != nil {
		return fmt.Errorf("prompts: invalid sql.template: %w", err)
	}

	p.sqlTemplate = tmpl

	return nil
}

// fills the SQL template with the user's natural language query
func (p *Prompts) RenderSQL(query string) (string, error) {
	if p.sqlTemplate == nil {
		if err := p.compile(); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	if err := p.sqlTemplate.Execute(&b, struct{ Query string }{Query: query}); err != nil {
		return "", fmt.Errorf("prompts: render sql template: %w", err)
	}

	return b.String(), nil
}
