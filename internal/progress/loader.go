package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads lessons from a directory of YAML files.
type Loader struct {
	Dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// LoadLesson loads a single lesson by ID (filename without extension).
func (l *Loader) LoadLesson(id string) (*Lesson, error) {
	path := filepath.Join(l.Dir, id+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson file: %w", err)
	}

	var lesson Lesson
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("failed to parse lesson yaml: %w", err)
	}
	if lesson.ID == "" {
		lesson.ID = id
	}
	return &lesson, nil
}

// ListLessons returns every parseable lesson in the directory, ordered by ID.
func (l *Loader) ListLessons() ([]*Lesson, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	var lessons []*Lesson
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		lesson, err := l.LoadLesson(strings.TrimSuffix(e.Name(), ".yaml"))
		if err != nil {
			// skip invalid files
			continue
		}
		lessons = append(lessons, lesson)
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })
	return lessons, nil
}
