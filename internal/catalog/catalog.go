package catalog

import "fmt"

// Chapter is an immutable, totally ordered list of steps. WaitingStepID
// names the step whose arrival fires auto quest-complete triggers.
type Chapter struct {
	ID            string
	Name          string
	WaitingStepID string
	Steps         []Step
}

// StepAt returns the step at index i, or nil if out of range.
func (c *Chapter) StepAt(i int) Step {
	if i < 0 || i >= len(c.Steps) {
		return nil
	}
	return c.Steps[i]
}

// IndexOf returns the index of the step with the given id, or -1.
func (c *Chapter) IndexOf(stepID string) int {
	for i, s := range c.Steps {
		if s.Meta().ID == stepID {
			return i
		}
	}
	return -1
}

// Catalog holds every chapter with precomputed indices. It is built once
// at load time and never mutated.
type Catalog struct {
	Version  string
	chapters []*Chapter

	chapterByID map[string]*Chapter
	stepChapter map[string]*Chapter
	stepByID    map[string]Step
}

// build constructs the catalog indices. Hint tiers must already be
// assigned on the chapters' questions.
func build(version string, chapters []*Chapter) (*Catalog, error) {
	cat := &Catalog{
		Version:     version,
		chapters:    chapters,
		chapterByID: make(map[string]*Chapter, len(chapters)),
		stepChapter: make(map[string]*Chapter),
		stepByID:    make(map[string]Step),
	}
	for _, ch := range chapters {
		if _, dup := cat.chapterByID[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate chapter id %q", ch.ID)
		}
		cat.chapterByID[ch.ID] = ch
		for _, s := range ch.Steps {
			id := s.Meta().ID
			if _, dup := cat.stepByID[id]; dup {
				return nil, fmt.Errorf("duplicate step id %q", id)
			}
			cat.stepByID[id] = s
			cat.stepChapter[id] = ch
		}
	}
	return cat, nil
}

// New assembles a catalog from programmatically built chapters,
// assigning hint tiers and running the same structural validation Load
// performs. Load is the usual entry point for document files.
func New(version string, chapters []*Chapter) (*Catalog, error) {
	for _, ch := range chapters {
		for _, s := range ch.Steps {
			if ws, ok := s.(*WebsiteStep); ok {
				assignTierOffsets(ws.Questions)
			}
		}
	}
	if err := Validate(chapters); err != nil {
		return nil, err
	}
	return build(version, chapters)
}

// Chapters returns all chapters in catalog order.
func (c *Catalog) Chapters() []*Chapter {
	return c.chapters
}

// Chapter returns the chapter with the given id, or nil.
func (c *Catalog) Chapter(id string) *Chapter {
	return c.chapterByID[id]
}

// Step returns the step with the given id, or nil. Step ids are unique
// across the whole catalog.
func (c *Catalog) Step(id string) Step {
	return c.stepByID[id]
}

// ChapterOf returns the chapter containing the given step id, or nil.
func (c *Catalog) ChapterOf(stepID string) *Chapter {
	return c.stepChapter[stepID]
}
