package models

// ErrorCategory is the top-level classification of a simulated error.
type ErrorCategory string

const (
	CategoryNetwork            ErrorCategory = "network"
	CategoryValidation         ErrorCategory = "validation"
	CategoryAuthentication     ErrorCategory = "authentication"
	CategoryPermission         ErrorCategory = "permission"
	CategoryNotFound           ErrorCategory = "not_found"
	CategoryGeneric            ErrorCategory = "generic"
	CategoryInfo               ErrorCategory = "info"
	CategoryDependency         ErrorCategory = "dependency"
	CategoryStateInconsistency ErrorCategory = "state_inconsistency"
)

// AllCategories returns every category in a stable order.
func AllCategories() []ErrorCategory {
	return []ErrorCategory{
		CategoryNetwork,
		CategoryValidation,
		CategoryAuthentication,
		CategoryPermission,
		CategoryNotFound,
		CategoryGeneric,
		CategoryInfo,
		CategoryDependency,
		CategoryStateInconsistency,
	}
}

// categoryMeta holds presentation metadata for a category.
type categoryMeta struct {
	icon  string
	label string
}

var categoryMetadata = map[ErrorCategory]categoryMeta{
	CategoryNetwork:            {icon: "📡", label: "Network"},
	CategoryValidation:         {icon: "📝", label: "Validation"},
	CategoryAuthentication:     {icon: "🔑", label: "Authentication"},
	CategoryPermission:         {icon: "🚫", label: "Permission"},
	CategoryNotFound:           {icon: "🔍", label: "Not Found"},
	CategoryGeneric:            {icon: "⚠️", label: "Error"},
	CategoryInfo:               {icon: "ℹ️", label: "Notice"},
	CategoryDependency:         {icon: "🧩", label: "Dependency"},
	CategoryStateInconsistency: {icon: "🔄", label: "State Sync"},
}

// Icon returns the display icon for the category.
func (c ErrorCategory) Icon() string {
	if meta, ok := categoryMetadata[c]; ok {
		return meta.icon
	}
	return categoryMetadata[CategoryGeneric].icon
}

// Label returns the human-readable label for the category.
func (c ErrorCategory) Label() string {
	if meta, ok := categoryMetadata[c]; ok {
		return meta.label
	}
	return categoryMetadata[CategoryGeneric].label
}

// ErrorSeverity orders simulated errors from informational to critical.
// The ordering is load-bearing: UI behavior compares severities directly
// (e.g. tap-to-dismiss is only offered up to SeverityMedium).
type ErrorSeverity int

const (
	SeverityInfo ErrorSeverity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the severity name.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AllowsTapDismiss reports whether an error of this severity may be
// dismissed by a plain tap rather than an explicit recovery action.
func (s ErrorSeverity) AllowsTapDismiss() bool {
	return s <= SeverityMedium
}

// RecoveryActionKind names a remedial action a user can invoke against a
// displayed error.
type RecoveryActionKind string

const (
	ActionRetry               RecoveryActionKind = "retry"
	ActionCheckConnection     RecoveryActionKind = "check_connection"
	ActionWorkOffline         RecoveryActionKind = "work_offline"
	ActionEditInput           RecoveryActionKind = "edit_input"
	ActionChooseDifferentName RecoveryActionKind = "choose_different_name"
	ActionContactAdmin        RecoveryActionKind = "contact_admin"
	ActionRequestPermission   RecoveryActionKind = "request_permission"
	ActionUseDefaultState     RecoveryActionKind = "use_default_state"
	ActionRefreshEnvironment  RecoveryActionKind = "refresh_environment"
	ActionReportIssue         RecoveryActionKind = "report_issue"
	ActionDismiss             RecoveryActionKind = "dismiss"
)

// ActionStyle tags how an action should be rendered.
type ActionStyle string

const (
	StylePrimary     ActionStyle = "primary"
	StyleSecondary   ActionStyle = "secondary"
	StyleTertiary    ActionStyle = "tertiary"
	StyleDestructive ActionStyle = "destructive"
)

type actionMeta struct {
	icon  string
	label string
	style ActionStyle
}

var actionMetadata = map[RecoveryActionKind]actionMeta{
	ActionRetry:               {icon: "↻", label: "Retry", style: StylePrimary},
	ActionCheckConnection:     {icon: "📶", label: "Check Connection", style: StyleSecondary},
	ActionWorkOffline:         {icon: "✈", label: "Work Offline", style: StyleTertiary},
	ActionEditInput:           {icon: "✎", label: "Edit Input", style: StylePrimary},
	ActionChooseDifferentName: {icon: "✳", label: "Choose Different Name", style: StyleSecondary},
	ActionContactAdmin:        {icon: "✉", label: "Contact Admin", style: StyleSecondary},
	ActionRequestPermission:   {icon: "🔓", label: "Request Permission", style: StylePrimary},
	ActionUseDefaultState:     {icon: "⌂", label: "Use Defaults", style: StyleSecondary},
	ActionRefreshEnvironment:  {icon: "⟳", label: "Refresh", style: StylePrimary},
	ActionReportIssue:         {icon: "🐞", label: "Report Issue", style: StyleTertiary},
	ActionDismiss:             {icon: "✕", label: "Dismiss", style: StyleDestructive},
}

// Icon returns the display icon for the action.
func (a RecoveryActionKind) Icon() string {
	if meta, ok := actionMetadata[a]; ok {
		return meta.icon
	}
	return actionMetadata[ActionDismiss].icon
}

// Label returns the button label for the action.
func (a RecoveryActionKind) Label() string {
	if meta, ok := actionMetadata[a]; ok {
		return meta.label
	}
	return string(a)
}

// Style returns the presentation style tag for the action.
func (a RecoveryActionKind) Style() ActionStyle {
	if meta, ok := actionMetadata[a]; ok {
		return meta.style
	}
	return StyleSecondary
}

// IsRetryLike reports whether the action re-attempts the failed operation,
// which biases its simulated success when the error itself is retryable.
func (a RecoveryActionKind) IsRetryLike() bool {
	switch a {
	case ActionRetry, ActionCheckConnection, ActionRefreshEnvironment:
		return true
	default:
		return false
	}
}
