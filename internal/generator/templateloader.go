package generator

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names every loader must provide
const (
	HGTemplate        = "plugin.hg.tmpl"
	CCGTemplate       = "plugin.ccg.tmpl"
	MissingHGTemplate = "missing.hg.tmpl"
)

// TemplateLoader is an interface for loading and generating files from templates
type TemplateLoader interface {
	// LoadTemplate loads a template by name
	LoadTemplate(name string) (*template.Template, error)

	// ListFiles returns a list of all template files
	ListFiles() ([]string, error)

	// Execute renders a template to a writer
	Execute(templateName string, w io.Writer, data interface{}) error

	// GenerateFile generates a file using a template and data
	GenerateFile(templateName, outputFile string, data interface{}) error
}

// FSTemplateLoader loads templates from any fs.FS implementation
type FSTemplateLoader struct {
	fs      fs.FS
	funcMap template.FuncMap
}

// NewFSTemplateLoader creates a new template loader from any fs.FS implementation
func NewFSTemplateLoader(filesystem fs.FS, funcMap template.FuncMap) TemplateLoader {
	return &FSTemplateLoader{
		fs:      filesystem,
		funcMap: funcMap,
	}
}

// EmbeddedTemplates returns the templates compiled into the binary
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

// NewEmbeddedTemplateLoader creates a template loader from the embedded templates
func NewEmbeddedTemplateLoader(funcMap template.FuncMap) TemplateLoader {
	return NewFSTemplateLoader(EmbeddedTemplates(), funcMap)
}

// NewOSTemplateLoader creates a template loader from the OS filesystem
func NewOSTemplateLoader(rootDir string, funcMap template.FuncMap) (TemplateLoader, error) {
	// Check if template directory exists
	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("template directory does not exist: %s", rootDir)
	}
	return &FSTemplateLoader{
		fs:      os.DirFS(rootDir),
		funcMap: funcMap,
	}, nil
}

// LoadTemplate loads a template from the filesystem
func (t *FSTemplateLoader) LoadTemplate(templatePath string) (*template.Template, error) {
	// Read template content
	content, err := fs.ReadFile(t.fs, templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	// Parse template
	tmpl, err := template.New(templatePath).Funcs(t.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}

	return tmpl, nil
}

// ListFiles returns a list of all template files
func (t *FSTemplateLoader) ListFiles() ([]string, error) {
	var templateFiles []string

	// Walk template directory
	err := fs.WalkDir(t.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Only include .tmpl files
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			templateFiles = append(templateFiles, path)
		}
		return nil
	})

	// Handle the case where templates directory doesn't exist
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to list template files: %w", err)
	}

	return templateFiles, nil
}

// Execute renders a template to a writer
func (t *FSTemplateLoader) Execute(templateName string, w io.Writer, data interface{}) error {
	tmpl, err := t.LoadTemplate(templateName)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return nil
}

// GenerateFile generates a file using a template and data
func (t *FSTemplateLoader) GenerateFile(templateName, outputFile string, data interface{}) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Create output file
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := t.Execute(templateName, file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ExtractEmbeddedFS extracts an embedded filesystem to a directory
func ExtractEmbeddedFS(filesystem fs.FS, destDir string, logger *slog.Logger) error {
	// Create the destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	// Walk the filesystem recursively
	err := fs.WalkDir(filesystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip the root directory
		if path == "." {
			return nil
		}

		// Create directories as needed
		if d.IsDir() {
			dirPath := filepath.Join(destDir, path)
			if err := os.MkdirAll(dirPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
			}
			return nil
		}

		// Extract file
		content, err := fs.ReadFile(filesystem, path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}

		outPath := filepath.Join(destDir, path)
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", outPath, err)
		}

		logger.Info("extracted template", "file", outPath)
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to extract filesystem: %w", err)
	}

	return nil
}
