package querylang

import (
	"regexp"
	"strings"
)

// maxDomainSuggestions caps how many workflow/folder names one value group
// carries; the domains can hold thousands of entries.
const maxDomainSuggestions = 8

// bareKeyPattern matches a just-typed "key:" with nothing after it. This is
// resolved before general context analysis so the full value list opens the
// moment the colon is typed.
var bareKeyPattern = regexp.MustCompile(`(?:^|\s)(\w+):$`)

// Engine answers suggestion and preview requests. It owns nothing but the
// compiled-in catalog and snapshots of the two caller-supplied dynamic
// domains; a single engine is meant to be driven by one caller at a time.
type Engine struct {
	catalog   *Catalog
	workflows []string
	folders   []string
}

// NewEngine creates an engine over the default catalog with the given
// dynamic domains. Either list may be nil.
func NewEngine(workflows, folders []string) *Engine {
	return &Engine{catalog: DefaultCatalog(), workflows: workflows, folders: folders}
}

// SetDomains replaces both dynamic domains. The caller must not invoke it
// concurrently with Suggest; per-instance use is single-threaded.
func (e *Engine) SetDomains(workflows, folders []string) {
	e.workflows = workflows
	e.folders = folders
}

// Suggest returns completions for the text before the cursor, or nil when
// the user is typing free text.
func (e *Engine) Suggest(input string, cursor int) *SuggestionGroup {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(input) {
		cursor = len(input)
	}
	before := input[:cursor]

	if m := bareKeyPattern.FindStringSubmatch(before); m != nil {
		return e.valueGroup(m[1], "")
	}

	ctx := AnalyzeContext(input, cursor)
	switch ctx.Type {
	case ContextInitial, ContextFilterKeyPartial:
		if ctx.PartialInput != "" {
			// Unique prefix shortcut: "lev" can only mean level, so jump
			// straight to its values and save the user a keystroke cycle.
			if def, unique := e.uniquePrefixMatch(ctx.PartialInput); unique {
				return e.valueGroup(def.Key, "")
			}
		}
		return e.keyGroup(ctx.PartialInput)
	case ContextFilterValue:
		return e.valueGroup(ctx.FilterKey, ctx.PartialInput)
	default:
		return nil
	}
}

// uniquePrefixMatch returns the single catalog field whose key or label the
// partial input prefixes, if exactly one does.
func (e *Engine) uniquePrefixMatch(partial string) (*FilterDefinition, bool) {
	var match *FilterDefinition
	for i := range e.catalog.fields {
		def := &e.catalog.fields[i]
		if prefixMatches(def.Key, def.Label, partial) {
			if match != nil {
				return nil, false
			}
			match = def
		}
	}
	return match, match != nil
}

func (e *Engine) keyGroup(partial string) *SuggestionGroup {
	group := &SuggestionGroup{Type: GroupFilterKeys, Suggestions: []Suggestion{}}

	for _, def := range e.catalog.fields {
		if prefixMatches(def.Key, def.Label, partial) {
			group.Suggestions = append(group.Suggestions, Suggestion{
				ID:          "key-" + def.Key,
				Value:       def.Key + ":",
				Label:       def.Label,
				Description: def.Description,
				Category:    "filter",
			})
		}
	}

	// Dynamic keys only make sense when their domain has entries.
	if len(e.workflows) > 0 && prefixMatches(FieldWorkflow, "Workflow", partial) {
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:          "key-workflow",
			Value:       FieldWorkflow + ":",
			Label:       "Workflow",
			Description: "Filter by workflow name",
			Category:    "filter",
		})
	}
	if len(e.folders) > 0 && prefixMatches(FieldFolder, "Folder", partial) {
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:          "key-folder",
			Value:       FieldFolder + ":",
			Label:       "Folder",
			Description: "Filter by folder name",
			Category:    "filter",
		})
	}
	if prefixMatches(FieldWorkflowID, "Workflow ID", partial) {
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:          "key-workflowId",
			Value:       FieldWorkflowID + ":",
			Label:       "Workflow ID",
			Description: "Filter by exact workflow id",
			Category:    "filter",
		})
	}
	if prefixMatches(FieldExecutionID, "Execution ID", partial) {
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:          "key-executionId",
			Value:       FieldExecutionID + ":",
			Label:       "Execution ID",
			Description: "Filter by exact execution id",
			Category:    "filter",
		})
	}

	return group
}

func (e *Engine) valueGroup(key, partial string) *SuggestionGroup {
	group := &SuggestionGroup{Type: GroupFilterValues, FilterKey: key, Suggestions: []Suggestion{}}

	switch key {
	case FieldWorkflow:
		group.Suggestions = domainSuggestions(key, e.workflows, partial)
	case FieldFolder:
		group.Suggestions = domainSuggestions(key, e.folders, partial)
	case FieldWorkflowID:
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:       "workflowId-hint",
			Label:    "Enter an exact workflow ID",
			Category: key,
		})
	case FieldExecutionID:
		group.Suggestions = append(group.Suggestions, Suggestion{
			ID:       "executionId-hint",
			Label:    "Enter an exact execution ID",
			Category: key,
		})
	default:
		def, ok := e.catalog.Lookup(key)
		if !ok {
			return group
		}
		needle := strings.ToLower(partial)
		for _, opt := range def.Options {
			if needle == "" ||
				strings.Contains(strings.ToLower(opt.Value), needle) ||
				strings.Contains(strings.ToLower(opt.Label), needle) {
				group.Suggestions = append(group.Suggestions, Suggestion{
					ID:          key + "-" + opt.Value,
					Value:       opt.Value,
					Label:       opt.Label,
					Description: opt.Description,
					Category:    key,
				})
			}
		}
	}

	return group
}

// domainSuggestions filters a dynamic domain by substring. The partial may
// carry the opening quote the user already typed; matching ignores quotes,
// and every suggestion value comes back fully quoted.
func domainSuggestions(key string, names []string, partial string) []Suggestion {
	needle := strings.ToLower(strings.Trim(partial, `"`))
	suggestions := make([]Suggestion, 0, maxDomainSuggestions)
	for _, name := range names {
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			ID:       key + "-" + name,
			Value:    `"` + name + `"`,
			Label:    name,
			Category: key,
		})
		if len(suggestions) == maxDomainSuggestions {
			break
		}
	}
	return suggestions
}

func prefixMatches(key, label, partial string) bool {
	if partial == "" {
		return true
	}
	p := strings.ToLower(partial)
	return strings.HasPrefix(strings.ToLower(key), p) || strings.HasPrefix(strings.ToLower(label), p)
}
