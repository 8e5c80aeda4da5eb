// Package content holds the portfolio copy: the hero name, projects, about
// text and contact links.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Project is one project card. Symbol is the decorative glyph shown behind
// the card.
type Project struct {
	Number      int    `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	Image       string `yaml:"image"`
	Device      string `yaml:"device"`
	Symbol      string `yaml:"symbol"`
}

// ContactLink is a row in the contact section.
type ContactLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

// Name is the hero name in both scripts.
type Name struct {
	Foreign []string `yaml:"foreign"`
	Final   string   `yaml:"final"`
}

// Portfolio is all of the page copy.
type Portfolio struct {
	Name     Name          `yaml:"name"`
	Roles    []string      `yaml:"roles"`
	Tagline  string        `yaml:"tagline"`
	Projects []Project     `yaml:"projects"`
	About    string        `yaml:"about"` // markdown
	Skills   []string      `yaml:"skills"`
	Contact  []ContactLink `yaml:"contact"`
	Footer   string        `yaml:"footer"`

	aboutHTML template.HTML
}

// Load reads a YAML content file. An empty path returns the built-in copy.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	p := &Portfolio{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	if err := p.render(); err != nil {
		return nil, err
	}
	return p, nil
}

// Default returns the built-in portfolio.
func Default() (*Portfolio, error) {
	p := &Portfolio{}
	if err := yaml.Unmarshal([]byte(defaultContent), p); err != nil {
		return nil, fmt.Errorf("parsing built-in content: %w", err)
	}
	if err := p.render(); err != nil {
		return nil, err
	}
	return p, nil
}

// AboutHTML is the about text rendered from markdown.
func (p *Portfolio) AboutHTML() template.HTML {
	return p.aboutHTML
}

func (p *Portfolio) render() error {
	if p.Name.Final == "" {
		return fmt.Errorf("content: name.final is required")
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.About), &buf); err != nil {
		return fmt.Errorf("rendering about text: %w", err)
	}
	p.aboutHTML = template.HTML(buf.String())
	return nil
}
