// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Default: "General & Other"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_doc_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// GameSessionsColumns holds the columns for the "game_sessions" table.
	GameSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "game_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "rounds_total", Type: field.TypeInt, Default: 0},
		{Name: "rounds_completed", Type: field.TypeInt, Default: 0},
		{Name: "main_words_found", Type: field.TypeInt, Default: 0},
		{Name: "bonus_words_found", Type: field.TypeInt, Default: 0},
		{Name: "termination_reason", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// GameSessionsTable holds the schema information for the "game_sessions" table.
	GameSessionsTable = &schema.Table{
		Name:       "game_sessions",
		Columns:    GameSessionsColumns,
		PrimaryKey: []*schema.Column{GameSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamesession_session_id",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[1]},
			},
			{
				Name:    "gamesession_doc_id",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[2]},
			},
			{
				Name:    "gamesession_started_at",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[12]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		GameSessionsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
