package querylang

// FilterOption is one enumerated legal value of a catalog field.
type FilterOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// FilterDefinition describes one filterable field: its key as typed in the
// query, a human label, and the enumerated values offered as completions.
type FilterDefinition struct {
	Key         string         `json:"key"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Options     []FilterOption `json:"options"`
}

// Catalog is the compiled-in table of filterable fields. It is immutable
// after construction and shared by every engine instance.
type Catalog struct {
	fields []FilterDefinition
	byKey  map[string]*FilterDefinition
}

// Dynamic and id fields recognized by the parser but not enumerated in the
// catalog. Their legal values come from caller-supplied domains (workflow,
// folder) or are free-form ids.
const (
	FieldWorkflow    = "workflow"
	FieldFolder      = "folder"
	FieldWorkflowID  = "workflowId"
	FieldExecutionID = "executionId"
	FieldExecution   = "execution"
)

// numericFields hold coerced float64 values; duration is stored in
// milliseconds regardless of the unit typed.
var numericFields = map[string]bool{
	"cost":     true,
	"duration": true,
}

var dynamicFields = map[string]bool{
	FieldWorkflow:    true,
	FieldFolder:      true,
	FieldWorkflowID:  true,
	FieldExecutionID: true,
	FieldExecution:   true,
}

var defaultCatalog = newCatalog([]FilterDefinition{
	{
		Key:         "level",
		Label:       "Level",
		Description: "Log level of execution entries",
		Options: []FilterOption{
			{Value: "error", Label: "Error", Description: "Errors only"},
			{Value: "warning", Label: "Warning", Description: "Warnings only"},
			{Value: "info", Label: "Info", Description: "Informational entries"},
			{Value: "debug", Label: "Debug", Description: "Debug output"},
		},
	},
	{
		Key:         "status",
		Label:       "Status",
		Description: "Final status of the execution",
		Options: []FilterOption{
			{Value: "success", Label: "Success"},
			{Value: "error", Label: "Error"},
			{Value: "running", Label: "Running"},
			{Value: "waiting", Label: "Waiting"},
			{Value: "canceled", Label: "Canceled"},
		},
	},
	{
		Key:         "trigger",
		Label:       "Trigger",
		Description: "How the execution was started",
		Options: []FilterOption{
			{Value: "manual", Label: "Manual", Description: "Started by hand"},
			{Value: "schedule", Label: "Schedule", Description: "Started by a cron schedule"},
			{Value: "webhook", Label: "Webhook", Description: "Started by an incoming webhook"},
			{Value: "api", Label: "API", Description: "Started through the public API"},
		},
	},
	{
		Key:         "date",
		Label:       "Date",
		Description: "Restrict to a day",
		Options: []FilterOption{
			{Value: "today", Label: "Today"},
			{Value: "yesterday", Label: "Yesterday"},
		},
	},
	{
		Key:         "cost",
		Label:       "Cost",
		Description: "Execution cost in dollars, with comparison operators",
		Options: []FilterOption{
			{Value: ">0.01", Label: "Over $0.01"},
			{Value: ">0.1", Label: "Over $0.10"},
			{Value: ">1", Label: "Over $1.00"},
		},
	},
	{
		Key:         "duration",
		Label:       "Duration",
		Description: "Execution run time, with comparison operators and ms/s units",
		Options: []FilterOption{
			{Value: ">500ms", Label: "Over 500 ms"},
			{Value: ">1s", Label: "Over 1 second"},
			{Value: ">5s", Label: "Over 5 seconds"},
			{Value: ">30s", Label: "Over 30 seconds"},
		},
	},
})

func newCatalog(fields []FilterDefinition) *Catalog {
	c := &Catalog{fields: fields, byKey: make(map[string]*FilterDefinition, len(fields))}
	for i := range c.fields {
		c.byKey[c.fields[i].Key] = &c.fields[i]
	}
	return c
}

// DefaultCatalog returns the compiled-in filter catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Fields returns catalog entries in declaration order.
func (c *Catalog) Fields() []FilterDefinition {
	return c.fields
}

// Lookup returns the definition for a catalog key.
func (c *Catalog) Lookup(key string) (*FilterDefinition, bool) {
	def, ok := c.byKey[key]
	return def, ok
}

// isKnownField reports whether the parser accepts a field name at all:
// catalog keys plus the dynamic and id fields.
func isKnownField(field string) bool {
	if dynamicFields[field] {
		return true
	}
	_, ok := defaultCatalog.byKey[field]
	return ok
}
