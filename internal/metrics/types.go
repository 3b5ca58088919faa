package metrics

// Metric name constants following Prometheus naming conventions
// Format: hr_{domain}_{metric}_{unit}

// Resume metrics
const (
	MetricResumeUploads      = "hr_resume_uploads_total"
	MetricResumeParseSeconds = "hr_resume_parse_duration_seconds"
	MetricResumesTotal       = "hr_resumes_total"
)

// Job description metrics
const (
	MetricJobDescriptionsCreated = "hr_job_descriptions_created_total"
	MetricJobDescriptionsTotal   = "hr_job_descriptions_total"
)

// Matching and AI agent metrics
const (
	MetricMatchingRequests = "hr_matching_requests_total"
	MetricMatchingSeconds  = "hr_matching_duration_seconds"
	MetricAIAgentCalls     = "hr_ai_agent_calls_total"
	MetricAIAgentLatency   = "hr_ai_agent_latency_seconds"
	MetricMatchScores      = "hr_match_scores"
	MetricCandidatesByFit  = "hr_candidates_by_fit_category"
)

// User and auth metrics
const (
	MetricUserLogins        = "hr_user_logins_total"
	MetricActiveUsers       = "hr_active_users"
	MetricUserRegistrations = "hr_user_registrations_total"
)

// Workflow metrics
const (
	MetricWorkflowsStarted    = "hr_workflows_started_total"
	MetricWorkflowsCompleted  = "hr_workflows_completed_total"
	MetricWorkflowSeconds     = "hr_workflow_duration_seconds"
	MetricWorkflowsInProgress = "hr_workflows_in_progress"
)

// File storage metrics
const (
	MetricFileStorageBytes = "hr_file_storage_bytes"
	MetricFileOperations   = "hr_file_operations_total"
)

// Database metrics
const (
	MetricDBOperations       = "hr_db_operations_total"
	MetricDBOperationSeconds = "hr_db_operation_duration_seconds"
)

// Application info metric
const MetricAppInfo = "hr_backend_app_info"

// Label name constants
const (
	LabelStatus      = "status"
	LabelFileType    = "file_type"
	LabelSource      = "source"
	LabelBatchSize   = "batch_size"
	LabelEndpoint    = "endpoint"
	LabelCategory    = "category"
	LabelType        = "type"
	LabelResumeCount = "resume_count"
	LabelOperation   = "operation"
	LabelCollection  = "collection"
)

// Status label values
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusPartial = "partial"
)

// Matching request sources
const (
	SourceManual = "manual"
	SourceAuto   = "auto"
)

// AI agent endpoints
const (
	EndpointCompareBatch  = "compare-batch"
	EndpointExtractResume = "extract-resume"
	EndpointExtractJD     = "extract-jd"
)

// Candidate fit categories
const (
	FitCategoryBest    = "Best Fit"
	FitCategoryPartial = "Partial Fit"
	FitCategoryNone    = "Not Fit"
)

// Workflow types
const (
	WorkflowTypeManual    = "manual"
	WorkflowTypeScheduled = "scheduled"
)

// File operations
const (
	FileOpUpload   = "upload"
	FileOpDownload = "download"
	FileOpDelete   = "delete"
)

// Storage usage categories
const (
	StorageTypeResumes = "resumes"
	StorageTypeOther   = "other"
)

// Database operations
const (
	DBOpFind   = "find"
	DBOpInsert = "insert"
	DBOpUpdate = "update"
	DBOpDelete = "delete"
)

// statusLabel maps an operation outcome to its status label value
func statusLabel(success bool) string {
	if success {
		return StatusSuccess
	}
	return StatusFailed
}
