// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/schema"
	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	queueentryFields := schema.QueueEntry{}.Fields()
	_ = queueentryFields
	// queueentryDescPriority is the schema descriptor for priority field.
	queueentryDescPriority := queueentryFields[4].Descriptor()
	// queueentry.DefaultPriority holds the default value on creation for the priority field.
	queueentry.DefaultPriority = queueentryDescPriority.Default.(int)
	// queueentry.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	queueentry.PriorityValidator = func() func(int) error {
		validators := queueentryDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// queueentryDescQueuedAt is the schema descriptor for queued_at field.
	queueentryDescQueuedAt := queueentryFields[5].Descriptor()
	// queueentry.DefaultQueuedAt holds the default value on creation for the queued_at field.
	queueentry.DefaultQueuedAt = queueentryDescQueuedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescIsReactivation is the schema descriptor for is_reactivation field.
	runDescIsReactivation := runFields[3].Descriptor()
	// run.DefaultIsReactivation holds the default value on creation for the is_reactivation field.
	run.DefaultIsReactivation = runDescIsReactivation.Default.(bool)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[13].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescAttempt is the schema descriptor for attempt field.
	stageexecutionDescAttempt := stageexecutionFields[4].Descriptor()
	// stageexecution.DefaultAttempt holds the default value on creation for the attempt field.
	stageexecution.DefaultAttempt = stageexecutionDescAttempt.Default.(int)
	// stageexecutionDescStartedAt is the schema descriptor for started_at field.
	stageexecutionDescStartedAt := stageexecutionFields[8].Descriptor()
	// stageexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	stageexecution.DefaultStartedAt = stageexecutionDescStartedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescUserLanguage is the schema descriptor for user_language field.
	taskDescUserLanguage := taskFields[6].Descriptor()
	// task.DefaultUserLanguage holds the default value on creation for the user_language field.
	task.DefaultUserLanguage = taskDescUserLanguage.Default.(string)
	// taskDescReactivationCount is the schema descriptor for reactivation_count field.
	taskDescReactivationCount := taskFields[10].Descriptor()
	// task.DefaultReactivationCount holds the default value on creation for the reactivation_count field.
	task.DefaultReactivationCount = taskDescReactivationCount.Default.(int)
	// task.ReactivationCountValidator is a validator for the "reactivation_count" field. It is called by the builders before save.
	task.ReactivationCountValidator = taskDescReactivationCount.Validators[0].(func(int) error)
	// taskDescIsLocked is the schema descriptor for is_locked field.
	taskDescIsLocked := taskFields[12].Descriptor()
	// task.DefaultIsLocked holds the default value on creation for the is_locked field.
	task.DefaultIsLocked = taskDescIsLocked.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	validationrequestFields := schema.ValidationRequest{}.Fields()
	_ = validationrequestFields
	// validationrequestDescRejectionCount is the schema descriptor for rejection_count field.
	validationrequestDescRejectionCount := validationrequestFields[8].Descriptor()
	// validationrequest.DefaultRejectionCount holds the default value on creation for the rejection_count field.
	validationrequest.DefaultRejectionCount = validationrequestDescRejectionCount.Default.(int)
	// validationrequest.RejectionCountValidator is a validator for the "rejection_count" field. It is called by the builders before save.
	validationrequest.RejectionCountValidator = validationrequestDescRejectionCount.Validators[0].(func(int) error)
	// validationrequestDescCreatedAt is the schema descriptor for created_at field.
	validationrequestDescCreatedAt := validationrequestFields[10].Descriptor()
	// validationrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationrequest.DefaultCreatedAt = validationrequestDescCreatedAt.Default.(func() time.Time)
	// validationrequestDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	validationrequestDescTimeoutSeconds := validationrequestFields[12].Descriptor()
	// validationrequest.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	validationrequest.DefaultTimeoutSeconds = validationrequestDescTimeoutSeconds.Default.(int)
	validationresponseFields := schema.ValidationResponse{}.Fields()
	_ = validationresponseFields
	// validationresponseDescConfidence is the schema descriptor for confidence field.
	validationresponseDescConfidence := validationresponseFields[4].Descriptor()
	// validationresponse.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	validationresponse.ConfidenceValidator = func() func(float64) error {
		validators := validationresponseDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationresponseDescCreatedAt is the schema descriptor for created_at field.
	validationresponseDescCreatedAt := validationresponseFields[10].Descriptor()
	// validationresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationresponse.DefaultCreatedAt = validationresponseDescCreatedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescSource is the schema descriptor for source field.
	webhookeventDescSource := webhookeventFields[1].Descriptor()
	// webhookevent.DefaultSource holds the default value on creation for the source field.
	webhookevent.DefaultSource = webhookeventDescSource.Default.(string)
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[7].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
