package tracing

import (
	"go.opentelemetry.io/otel/attribute"
)

// Span attribute keys used across the backend.
const (
	AttrResumeID         = "hr.resume.id"
	AttrJobDescriptionID = "hr.job_description.id"
	AttrWorkflowID       = "hr.workflow.id"
	AttrWorkflowType     = "hr.workflow.type"
	AttrBatchSize        = "hr.batch.size"
	AttrCollection       = "hr.db.collection"
	AttrOperation        = "hr.db.operation"
	AttrFileID           = "hr.file.id"
	AttrFileName         = "hr.file.name"
	AttrFileSize         = "hr.file.size"
	AttrStatus           = "hr.status"
)

// ResumeID returns a span attribute for a resume identifier.
func ResumeID(id string) attribute.KeyValue {
	return attribute.String(AttrResumeID, id)
}

// JobDescriptionID returns a span attribute for a job description identifier.
func JobDescriptionID(id string) attribute.KeyValue {
	return attribute.String(AttrJobDescriptionID, id)
}

// WorkflowID returns a span attribute for a workflow execution identifier.
func WorkflowID(id string) attribute.KeyValue {
	return attribute.String(AttrWorkflowID, id)
}

// WorkflowType returns a span attribute for a workflow type.
func WorkflowType(workflowType string) attribute.KeyValue {
	return attribute.String(AttrWorkflowType, workflowType)
}

// BatchSize returns a span attribute for a matching batch size.
func BatchSize(n int) attribute.KeyValue {
	return attribute.Int(AttrBatchSize, n)
}

// Collection returns a span attribute for a database collection name.
func Collection(name string) attribute.KeyValue {
	return attribute.String(AttrCollection, name)
}

// Operation returns a span attribute for a database operation.
func Operation(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// FileID returns a span attribute for a stored file identifier.
func FileID(id string) attribute.KeyValue {
	return attribute.String(AttrFileID, id)
}

// FileName returns a span attribute for a stored file name.
func FileName(name string) attribute.KeyValue {
	return attribute.String(AttrFileName, name)
}

// FileSize returns a span attribute for a file size in bytes.
func FileSize(size int64) attribute.KeyValue {
	return attribute.Int64(AttrFileSize, size)
}

// Status returns a span attribute for an operation outcome.
func Status(status string) attribute.KeyValue {
	return attribute.String(AttrStatus, status)
}
