// Package schedstore loads task schedules from YAML or JSON files and
// exposes them through the schedule store contract.
package schedstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/internal/profilestore"
	"github.com/svisuals/seq4d/schema"
	"gopkg.in/yaml.v3"
)

// FileScheduleStore is a schedule loaded from a file. It is immutable after
// Load; the resolver only reads from it.
type FileScheduleStore struct {
	name    string
	roots   []schema.Task
	stack   schema.GroupStack
	inline  []schema.ProfileGroup
	skipped []schema.SkippedTask
}

var _ contract.ScheduleStore = &FileScheduleStore{} // Compile-time check

// fileSchedule is the on-disk shape. Tasks nest arbitrarily deep.
type fileSchedule struct {
	Name          string           `yaml:"name" json:"name"`
	GroupStack    []fileStackEntry `yaml:"group_stack" json:"group_stack"`
	ProfileGroups []map[string]any `yaml:"profile_groups" json:"profile_groups"`
	Tasks         []fileTask       `yaml:"tasks" json:"tasks"`
}

type fileStackEntry struct {
	Group   string `yaml:"group" json:"group"`
	Enabled *bool  `yaml:"enabled" json:"enabled"`
}

type fileTask struct {
	ID        string                  `yaml:"id" json:"id"`
	Name      string                  `yaml:"name" json:"name"`
	Type      string                  `yaml:"type" json:"type"`
	Dates     map[string]fileDates    `yaml:"dates" json:"dates"`
	Outputs   []string                `yaml:"outputs" json:"outputs"`
	Inputs    []string                `yaml:"inputs" json:"inputs"`
	Overrides map[string]fileOverride `yaml:"overrides" json:"overrides"`
	Tasks     []fileTask              `yaml:"tasks" json:"tasks"`
}

type fileDates struct {
	Start  string `yaml:"start" json:"start"`
	Finish string `yaml:"finish" json:"finish"`
}

type fileOverride struct {
	Enabled *bool  `yaml:"enabled" json:"enabled"`
	Profile string `yaml:"profile" json:"profile"`
}

// Load reads a schedule file. The format follows the extension: .json is
// JSON, everything else is parsed as YAML (which also accepts JSON input).
func Load(path string) (*FileScheduleStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file %q: %w", path, err)
	}

	var raw fileSchedule
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse schedule file %q: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse schedule file %q: %w", path, err)
		}
	}

	name := raw.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store := &FileScheduleStore{name: name}

	seen := map[string]bool{}
	store.roots, err = buildTasks(raw.Tasks, seen, &store.skipped)
	if err != nil {
		return nil, fmt.Errorf("schedule file %q: %w", path, err)
	}

	for _, entry := range raw.GroupStack {
		if entry.Group == "" {
			return nil, fmt.Errorf("schedule file %q: group_stack entry is missing a group name", path)
		}
		store.stack = append(store.stack, schema.GroupStackEntry{
			Group:   entry.Group,
			Enabled: entry.Enabled == nil || *entry.Enabled,
		})
	}

	store.inline, err = buildInlineGroups(raw.ProfileGroups)
	if err != nil {
		return nil, fmt.Errorf("schedule file %q: %w", path, err)
	}

	return store, nil
}

// buildTasks converts the file shape into schema tasks, rejecting duplicate
// or missing ids anywhere in the tree. Malformed dates are not fatal: the
// task loses all its date ranges, gets a skip entry, and loading continues
// so one bad task cannot sink the whole schedule.
func buildTasks(raw []fileTask, seen map[string]bool, skipped *[]schema.SkippedTask) ([]schema.Task, error) {
	var tasks []schema.Task
	for _, rt := range raw {
		if rt.ID == "" {
			return nil, fmt.Errorf("task %q is missing an id", rt.Name)
		}
		if seen[rt.ID] {
			return nil, fmt.Errorf("duplicate task id %q", rt.ID)
		}
		seen[rt.ID] = true

		task := schema.Task{
			ID:              rt.ID,
			Name:            rt.Name,
			CategoricalType: strings.ToUpper(rt.Type),
		}

		badDates := false
		for key, fd := range rt.Dates {
			source := schema.DateSource(strings.ToLower(key))
			if _, ok := schema.ValidDateSources[source]; !ok || source == schema.UnifiedSource {
				return nil, fmt.Errorf("task %q has unknown date source %q", rt.ID, key)
			}
			r, err := parseDates(fd)
			if err != nil {
				contract.LogWarn(fmt.Sprintf("task %q, source %q", rt.ID, key), err)
				badDates = true
				continue
			}
			if task.Dates == nil {
				task.Dates = map[schema.DateSource]schema.DateRange{}
			}
			task.Dates[source] = r
		}
		if badDates {
			// One unparseable source poisons the task's dates entirely, so a
			// resolution pass cannot half-trust it on another source.
			task.Dates = nil
			*skipped = append(*skipped, schema.SkippedTask{TaskID: rt.ID, Reason: schema.SkipBadDates})
		}

		for _, productID := range rt.Outputs {
			task.Assignments = append(task.Assignments, schema.ProductAssignment{
				ProductID:    productID,
				Relationship: schema.OutputRelationship,
			})
		}
		for _, productID := range rt.Inputs {
			task.Assignments = append(task.Assignments, schema.ProductAssignment{
				ProductID:    productID,
				Relationship: schema.InputRelationship,
			})
		}

		for group, ov := range rt.Overrides {
			if task.Overrides == nil {
				task.Overrides = map[string]schema.ProfileOverride{}
			}
			task.Overrides[group] = schema.ProfileOverride{
				Enabled: ov.Enabled == nil || *ov.Enabled,
				Profile: ov.Profile,
			}
		}

		children, err := buildTasks(rt.Tasks, seen, skipped)
		if err != nil {
			return nil, err
		}
		task.Children = children
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// parseDates parses a start/finish pair and checks ordering.
func parseDates(fd fileDates) (schema.DateRange, error) {
	if fd.Start == "" || fd.Finish == "" {
		return schema.DateRange{}, fmt.Errorf("both start and finish are required")
	}
	now := time.Now()
	start, err := contract.ParseDate(fd.Start, now)
	if err != nil {
		return schema.DateRange{}, err
	}
	finish, err := contract.ParseDate(fd.Finish, now)
	if err != nil {
		return schema.DateRange{}, err
	}
	if finish.Before(start) {
		return schema.DateRange{}, fmt.Errorf("finish %s is before start %s", fd.Finish, fd.Start)
	}
	return schema.DateRange{Start: start, Finish: finish}, nil
}

// buildInlineGroups funnels inline group definitions through the same decode
// path as persisted groups, so defaulting rules match everywhere.
func buildInlineGroups(raw []map[string]any) ([]schema.ProfileGroup, error) {
	var groups []schema.ProfileGroup
	for _, rg := range raw {
		payload, err := json.Marshal(rg)
		if err != nil {
			return nil, fmt.Errorf("failed to re-encode inline profile group: %w", err)
		}
		group, err := profilestore.DecodeGroup(payload)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Name returns a human-readable identifier for the schedule.
func (s *FileScheduleStore) Name() string {
	return s.name
}

// RootTasks returns the top-level tasks.
func (s *FileScheduleStore) RootTasks() []schema.Task {
	return s.roots
}

// GroupStack returns the ordered enable-stack recorded with the schedule.
func (s *FileScheduleStore) GroupStack() schema.GroupStack {
	return s.stack
}

// InlineGroups returns profile groups embedded in the schedule file.
func (s *FileScheduleStore) InlineGroups() []schema.ProfileGroup {
	return s.inline
}

// Skipped returns tasks whose dates could not be parsed at load time.
func (s *FileScheduleStore) Skipped() []schema.SkippedTask {
	return s.skipped
}
