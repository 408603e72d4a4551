package types

import (
	"errors"
	"fmt"
	"regexp"
)

// Category is the closed set of template categories
type Category string

const (
	CategoryAuth         Category = "auth"
	CategoryPayment      Category = "payment"
	CategoryEmail        Category = "email"
	CategoryNotification Category = "notification"
	CategoryDatabase     Category = "database"
	CategoryStorage      Category = "storage"
	CategoryAPI          Category = "api"
	CategoryUI           Category = "ui"
	CategoryTesting      Category = "testing"
	CategoryDeployment   Category = "deployment"
)

// Categories lists every valid category value
var Categories = []Category{
	CategoryAuth, CategoryPayment, CategoryEmail, CategoryNotification,
	CategoryDatabase, CategoryStorage, CategoryAPI, CategoryUI,
	CategoryTesting, CategoryDeployment,
}

// Languages lists every valid language value
var Languages = []string{"typescript", "javascript", "python", "go", "rust", "java"}

var (
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// EnvVariable declares a configuration value the template consumer must supply
type EnvVariable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Example     string `json:"example,omitempty"`
}

// TemplateFile declares a code file that belongs to the template
type TemplateFile struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	IsRequired  bool   `json:"isRequired"`
}

// Usage holds the free-text install/configure/example blocks returned verbatim
type Usage struct {
	Installation  string `json:"installation"`
	Configuration string `json:"configuration"`
	Example       string `json:"example"`
}

// TemplateRecord is the unit of retrieval: the metadata half of a template.
// ID is both the primary key and the relative storage path
// (language/framework/category/name).
type TemplateRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Language    string   `json:"language"`
	Framework   string   `json:"framework"`

	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`

	EnvVariables []EnvVariable  `json:"envVariables,omitempty"`
	Files        []TemplateFile `json:"files,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Usage        Usage          `json:"usage"`

	RelatedTemplates []string `json:"relatedTemplates,omitempty"`

	Version   string `json:"version"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TemplateCodeBody maps a file path (relative to the template's code
// directory) to its raw content.
type TemplateCodeBody map[string]string

// ValidCategory reports whether c is one of the closed category values
func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ValidLanguage reports whether lang is one of the supported languages
func ValidLanguage(lang string) bool {
	for _, v := range Languages {
		if lang == v {
			return true
		}
	}
	return false
}

// Validate checks structural validity of a loaded record. It does not verify
// that declared files exist on disk; that is the validator's job.
func (r *TemplateRecord) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	if !ValidCategory(r.Category) {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if !ValidLanguage(r.Language) {
		return fmt.Errorf("unknown language %q", r.Language)
	}
	if r.Framework == "" {
		return errors.New("framework is required")
	}
	if !versionPattern.MatchString(r.Version) {
		return fmt.Errorf("version %q does not match MAJOR.MINOR.PATCH", r.Version)
	}
	if r.CreatedAt != "" && !datePattern.MatchString(r.CreatedAt) {
		return fmt.Errorf("createdAt %q is not YYYY-MM-DD", r.CreatedAt)
	}
	if r.UpdatedAt != "" && !datePattern.MatchString(r.UpdatedAt) {
		return fmt.Errorf("updatedAt %q is not YYYY-MM-DD", r.UpdatedAt)
	}
	for i, ev := range r.EnvVariables {
		if ev.Name == "" {
			return fmt.Errorf("envVariables[%d]: name is required", i)
		}
	}
	for i, f := range r.Files {
		if f.Path == "" {
			return fmt.Errorf("files[%d]: path is required", i)
		}
	}
	return nil
}

// SearchableText concatenates the fields used as ranking input, for both the
// embedding corpus and the lexical fallback.
func (r *TemplateRecord) SearchableText() string {
	text := r.Name + " " + r.Description + " " + string(r.Category) + " " + r.Framework + " " + r.Language
	for _, tag := range r.Tags {
		text += " " + tag
	}
	return text
}
