package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// filteredKey marks entries the FilterHook rejected; AsyncHook skips them
const filteredKey = "_filtered"

// FilterHook drops entries by level, module, collection or HTTP method
type FilterHook struct {
	levels      map[string]bool
	modules     map[string]bool
	collections map[string]bool
	methods     map[string]bool
	mu          sync.RWMutex
}

// NewFilterHook builds the hook from cfg
func NewFilterHook(cfg *LogConfig) *FilterHook {
	h := &FilterHook{}
	h.UpdateFilters(cfg)
	return h
}

// UpdateFilters swaps the filter sets at runtime
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.levels = parseFilter(cfg.FilterLevels)
	h.modules = parseFilter(cfg.FilterModules)
	h.collections = parseFilter(cfg.FilterCollections)
	h.methods = parseFilter(cfg.FilterMethods)
}

// parseFilter turns "a,b,c" into a set; nil means allow everything
func parseFilter(filterStr string) map[string]bool {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" || filterStr == "*" {
		return nil
	}
	result := make(map[string]bool)
	for _, v := range strings.Split(filterStr, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			result[v] = true
		}
	}
	return result
}

// Levels handles every level
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire marks rejected entries instead of removing them; hooks cannot cancel an entry
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !allowed(h.levels, entry.Level.String()) ||
		!allowed(h.modules, entry.Data["module"]) ||
		!allowed(h.collections, entry.Data["collection"]) ||
		!allowed(h.methods, entry.Data["method"]) {
		entry.Data[filteredKey] = true
	}
	return nil
}

// allowed passes entries that lack the field
func allowed(set map[string]bool, value any) bool {
	if set == nil {
		return true
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return true
	}
	return set[strings.ToLower(s)]
}
