package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves the named formatter and emits its output: console
// styles go to stdout, file styles to a timestamped file in the working
// directory.
func GenerateReport(results *domain.ProjectionSet, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	ext := extensionFor(f.Name())
	if ext == "" {
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	filename, err := WriteFormatted(f, results, ext)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}

// extensionFor maps a canonical formatter name to a file extension. Empty
// means the format prints to stdout.
func extensionFor(name string) string {
	switch name {
	case "csv", "csv-summary":
		return "csv"
	case "json":
		return "json"
	case "html":
		return "html"
	default:
		return ""
	}
}

// SaveConfiguration saves a configuration to a file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
