// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QueueEntry is the predicate function for queueentry builders.
type QueueEntry func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// StageExecution is the predicate function for stageexecution builders.
type StageExecution func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// ValidationRequest is the predicate function for validationrequest builders.
type ValidationRequest func(*sql.Selector)

// ValidationResponse is the predicate function for validationresponse builders.
type ValidationResponse func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
