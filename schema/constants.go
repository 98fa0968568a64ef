package schema

import "strings"

// Custom string types for type safety.
type (
	// DateSource selects which of a task's date sets drives the animation.
	DateSource string

	// Relationship describes how a product relates to a task.
	Relationship string

	// FrameState is the position of a frame relative to a task's range.
	FrameState string

	// EffectKind is the appearance effect of a profile.
	EffectKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for profile persistence.
	DatabaseBackend string

	// RendererKind selects which boundary consumer processes the records.
	RendererKind string

	// ProductState classifies a product at a single snapshot date.
	ProductState string
)

// All date sources supported.
const (
	ScheduleSource DateSource = "schedule" // default
	ActualSource   DateSource = "actual"
	EarlySource    DateSource = "early"
	LateSource     DateSource = "late"
	UnifiedSource  DateSource = "unified" // min/max across all of the above
)

// Product/task relationships. The schedule store supplies these; they are
// never inferred.
const (
	OutputRelationship Relationship = "output" // product is produced by the task
	InputRelationship  Relationship = "input"  // product is consumed, moved or removed
)

// Frame states relative to a task's mapped frame range.
const (
	BeforeStart FrameState = "before_start"
	Active      FrameState = "active"
	AfterEnd    FrameState = "after_end"
)

// Appearance effects.
const (
	InstantEffect EffectKind = "instant" // default
	GrowthEffect  EffectKind = "growth"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Renderer kinds for the animate command.
const (
	KeyframeRenderer   RendererKind = "keyframe"
	ProceduralRenderer RendererKind = "procedural"
	BothRenderers      RendererKind = "both"
	NoRenderer         RendererKind = "none" // default: records only
)

// Snapshot states for a product at a given date.
const (
	ToBuild        ProductState = "TO_BUILD"
	InConstruction ProductState = "IN_CONSTRUCTION"
	Completed      ProductState = "COMPLETED"
	ToDemolish     ProductState = "TO_DEMOLISH"
	InDemolition   ProductState = "IN_DEMOLITION"
	Demolished     ProductState = "DEMOLISHED"
	Unassigned     ProductState = "UNASSIGNED"
)

// Reserved names. The DEFAULT group always exists and always contains a
// profile named NOTDEFINED, which terminates the resolution chain.
const (
	DefaultGroupName   = "DEFAULT"
	NotDefinedProfile  = "NOTDEFINED"
	UserDefinedProfile = "USERDEFINED"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDateSources lists all valid date sources.
var ValidDateSources = map[DateSource]struct{}{
	ScheduleSource: {},
	ActualSource:   {},
	EarlySource:    {},
	LateSource:     {},
	UnifiedSource:  {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidRendererKinds lists all valid renderer selections.
var ValidRendererKinds = map[RendererKind]struct{}{
	KeyframeRenderer:   {},
	ProceduralRenderer: {},
	BothRenderers:      {},
	NoRenderer:         {},
}

// ConcreteDateSources are the sources the unified mode spans.
var ConcreteDateSources = []DateSource{ScheduleSource, ActualSource, EarlySource, LateSource}

// removalClass holds the profile names that denote destructive or consuming
// work. Products governed by these profiles pre-exist and disappear when the
// task ends, regardless of relationship.
var removalClass = map[string]struct{}{
	"DEMOLITION": {},
	"DISMANTLE":  {},
	"REMOVAL":    {},
	"DISPOSAL":   {},
}

// IsRemovalClass reports whether the profile name denotes removal work.
// Matching is case-insensitive to tolerate hand-edited schedule files.
func IsRemovalClass(profileName string) bool {
	_, ok := removalClass[strings.ToUpper(profileName)]
	return ok
}

// CanonicalProfileNames is the fixed set of profile names the DEFAULT group
// always provides, one per categorical task type.
var CanonicalProfileNames = []string{
	"CONSTRUCTION",
	"INSTALLATION",
	"DEMOLITION",
	"REMOVAL",
	"DISPOSAL",
	"DISMANTLE",
	"OPERATION",
	"MAINTENANCE",
	"ATTENDANCE",
	"RENOVATION",
	"LOGISTIC",
	"MOVE",
	NotDefinedProfile,
	UserDefinedProfile,
}
