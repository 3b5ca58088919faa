package database

// Logical collection names of the backend. Label values on the database
// metrics use these exact strings, so renaming one fragments its series.
const (
	CollectionResume             = "resume"
	CollectionJobDescription     = "JobDescription"
	CollectionResumeResult       = "resume_result"
	CollectionUsers              = "users"
	CollectionAuditLogs          = "audit_logs"
	CollectionFileMetadata       = "files"
	CollectionWorkflowExecutions = "workflow_executions"
)

// Collections returns every logical collection name
func Collections() []string {
	return []string{
		CollectionResume,
		CollectionJobDescription,
		CollectionResumeResult,
		CollectionUsers,
		CollectionAuditLogs,
		CollectionFileMetadata,
		CollectionWorkflowExecutions,
	}
}
