// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QueueEntriesColumns holds the columns for the "queue_entries" table.
	QueueEntriesColumns = []*schema.Column{
		{Name: "queue_id", Type: field.TypeString, Unique: true},
		{Name: "external_item_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeInt64, Nullable: true},
		{Name: "run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "queued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "waiting_since", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting_validation", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "scheduler_ref", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// QueueEntriesTable holds the schema information for the "queue_entries" table.
	QueueEntriesTable = &schema.Table{
		Name:       "queue_entries",
		Columns:    QueueEntriesColumns,
		PrimaryKey: []*schema.Column{QueueEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queueentry_external_item_id_status",
				Unique:  false,
				Columns: []*schema.Column{QueueEntriesColumns[1], QueueEntriesColumns[9]},
			},
			{
				Name:    "queueentry_status_queued_at",
				Unique:  false,
				Columns: []*schema.Column{QueueEntriesColumns[9], QueueEntriesColumns[5]},
			},
			{
				Name:    "queueentry_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{QueueEntriesColumns[9], QueueEntriesColumns[6]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeInt64, Increment: true},
		{Name: "parent_run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "is_reactivation", Type: field.TypeBool, Default: false},
		{Name: "reactivation_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "new_requirements", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting_validation", "completed", "failed", "abandoned", "timeout"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_merged_pr_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt64},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_tasks_runs",
				Columns:    []*schema.Column{RunsColumns[13]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[13], RunsColumns[5]},
			},
			{
				Name:    "run_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[5], RunsColumns[11]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[5], RunsColumns[12]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "stage_execution_id", Type: field.TypeInt64, Increment: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "succeeded", "failed", "skipped"}, Default: "started"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "run_id", Type: field.TypeInt64},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_runs_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[10]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_run_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[10], StageExecutionsColumns[2]},
			},
			{
				Name:    "stageexecution_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[10], StageExecutionsColumns[6]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeInt64, Increment: true},
		{Name: "external_item_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "repository_url", Type: field.TypeString, Nullable: true},
		{Name: "user_language", Type: field.TypeString, Default: "en"},
		{Name: "creator_id", Type: field.TypeString, Nullable: true},
		{Name: "creator_email", Type: field.TypeString, Nullable: true},
		{Name: "internal_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "waiting_validation", "completed", "failed", "abandoned", "quality_check"}, Default: "pending"},
		{Name: "reactivation_count", Type: field.TypeInt, Default: 0},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_locked", Type: field.TypeBool, Default: false},
		{Name: "last_run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_external_item_id",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_internal_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
			{
				Name:    "task_internal_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[15]},
			},
		},
	}
	// ValidationRequestsColumns holds the columns for the "validation_requests" table.
	ValidationRequestsColumns = []*schema.Column{
		{Name: "validation_request_id", Type: field.TypeInt64, Increment: true},
		{Name: "parent_validation_id", Type: field.TypeInt64, Nullable: true},
		{Name: "external_comment_id", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "requester_id", Type: field.TypeString, Nullable: true},
		{Name: "requester_email", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "abandoned", "expired"}, Default: "pending"},
		{Name: "rejection_count", Type: field.TypeInt, Default: 0},
		{Name: "modification_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "run_id", Type: field.TypeInt64},
	}
	// ValidationRequestsTable holds the schema information for the "validation_requests" table.
	ValidationRequestsTable = &schema.Table{
		Name:       "validation_requests",
		Columns:    ValidationRequestsColumns,
		PrimaryKey: []*schema.Column{ValidationRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_requests_runs_validation_requests",
				Columns:    []*schema.Column{ValidationRequestsColumns[12]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationrequest_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ValidationRequestsColumns[12], ValidationRequestsColumns[9]},
			},
			{
				Name:    "validationrequest_status",
				Unique:  false,
				Columns: []*schema.Column{ValidationRequestsColumns[6]},
			},
		},
	}
	// ValidationResponsesColumns holds the columns for the "validation_responses" table.
	ValidationResponsesColumns = []*schema.Column{
		{Name: "validation_response_id", Type: field.TypeInt64, Increment: true},
		{Name: "raw_reply", Type: field.TypeString, Size: 2147483647},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"approve", "reject", "abandon", "clarification_needed"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "analysis_method", Type: field.TypeEnum, Enums: []string{"rule", "model"}, Default: "rule"},
		{Name: "modification_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reviewer_id", Type: field.TypeString, Nullable: true},
		{Name: "reviewer_email", Type: field.TypeString, Nullable: true},
		{Name: "system_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "validation_request_id", Type: field.TypeInt64, Unique: true},
	}
	// ValidationResponsesTable holds the schema information for the "validation_responses" table.
	ValidationResponsesTable = &schema.Table{
		Name:       "validation_responses",
		Columns:    ValidationResponsesColumns,
		PrimaryKey: []*schema.Column{ValidationResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_responses_validation_requests_response",
				Columns:    []*schema.Column{ValidationResponsesColumns[10]},
				RefColumns: []*schema.Column{ValidationRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationresponse_verdict",
				Unique:  false,
				Columns: []*schema.Column{ValidationResponsesColumns[2]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "webhook_event_id", Type: field.TypeInt64, Increment: true},
		{Name: "source", Type: field.TypeString, Default: "board"},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "external_event_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "signature", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "queued", "reactivated", "ignored", "error"}, Default: "pending"},
		{Name: "outcome_detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_source_external_event_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[3]},
			},
			{
				Name:    "webhookevent_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[7]},
			},
			{
				Name:    "webhookevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QueueEntriesTable,
		RunsTable,
		StageExecutionsTable,
		TasksTable,
		ValidationRequestsTable,
		ValidationResponsesTable,
		WebhookEventsTable,
	}
)

func init() {
	RunsTable.ForeignKeys[0].RefTable = TasksTable
	StageExecutionsTable.ForeignKeys[0].RefTable = RunsTable
	ValidationRequestsTable.ForeignKeys[0].RefTable = RunsTable
	ValidationResponsesTable.ForeignKeys[0].RefTable = ValidationRequestsTable
}
