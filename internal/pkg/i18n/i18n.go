package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*/comments.yaml
var localeFS embed.FS

type Translations map[string]string

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
	once    sync.Once
)

func load() error {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := path.Join("locales", locale, "comments.yaml")

		data, err := localeFS.ReadFile(filePath)
		if err != nil {
			continue
		}

		var config struct {
			Comments Translations `yaml:"COMMENTS"`
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		locales[locale] = config.Comments
	}

	return nil
}

func ensureLoaded() {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		_ = load()
	})
}

// Translate resolves a message key for the given locale, falling back to
// Japanese (the site's primary language) and finally to the key itself.
func Translate(locale, key string) string {
	ensureLoaded()

	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != "ja" {
		if trans, ok := locales["ja"]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

// Locales lists the locales with a loaded catalog.
func Locales() []string {
	ensureLoaded()

	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	return names
}
