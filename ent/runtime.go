// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adwitiya/lexio/ent/document"
	"github.com/adwitiya/lexio/ent/gamesession"
	"github.com/adwitiya/lexio/ent/llmrequestevent"
	"github.com/adwitiya/lexio/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocID is the schema descriptor for doc_id field.
	documentDescDocID := documentFields[0].Descriptor()
	// document.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	document.DocIDValidator = documentDescDocID.Validators[0].(func(string) error)
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[1].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = documentDescTitle.Validators[0].(func(string) error)
	// documentDescContent is the schema descriptor for content field.
	documentDescContent := documentFields[2].Descriptor()
	// document.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	document.ContentValidator = documentDescContent.Validators[0].(func(string) error)
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[3].Descriptor()
	// document.DefaultCategory holds the default value on creation for the category field.
	document.DefaultCategory = documentDescCategory.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[4].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	gamesessionFields := schema.GameSession{}.Fields()
	_ = gamesessionFields
	// gamesessionDescSessionID is the schema descriptor for session_id field.
	gamesessionDescSessionID := gamesessionFields[0].Descriptor()
	// gamesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gamesession.SessionIDValidator = gamesessionDescSessionID.Validators[0].(func(string) error)
	// gamesessionDescDocID is the schema descriptor for doc_id field.
	gamesessionDescDocID := gamesessionFields[1].Descriptor()
	// gamesession.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	gamesession.DocIDValidator = gamesessionDescDocID.Validators[0].(func(string) error)
	// gamesessionDescGameType is the schema descriptor for game_type field.
	gamesessionDescGameType := gamesessionFields[2].Descriptor()
	// gamesession.GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	gamesession.GameTypeValidator = gamesessionDescGameType.Validators[0].(func(string) error)
	// gamesessionDescDifficulty is the schema descriptor for difficulty field.
	gamesessionDescDifficulty := gamesessionFields[3].Descriptor()
	// gamesession.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	gamesession.DifficultyValidator = gamesessionDescDifficulty.Validators[0].(func(string) error)
	// gamesessionDescScore is the schema descriptor for score field.
	gamesessionDescScore := gamesessionFields[4].Descriptor()
	// gamesession.DefaultScore holds the default value on creation for the score field.
	gamesession.DefaultScore = gamesessionDescScore.Default.(int)
	// gamesession.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	gamesession.ScoreValidator = gamesessionDescScore.Validators[0].(func(int) error)
	// gamesessionDescRoundsTotal is the schema descriptor for rounds_total field.
	gamesessionDescRoundsTotal := gamesessionFields[5].Descriptor()
	// gamesession.DefaultRoundsTotal holds the default value on creation for the rounds_total field.
	gamesession.DefaultRoundsTotal = gamesessionDescRoundsTotal.Default.(int)
	// gamesessionDescRoundsCompleted is the schema descriptor for rounds_completed field.
	gamesessionDescRoundsCompleted := gamesessionFields[6].Descriptor()
	// gamesession.DefaultRoundsCompleted holds the default value on creation for the rounds_completed field.
	gamesession.DefaultRoundsCompleted = gamesessionDescRoundsCompleted.Default.(int)
	// gamesessionDescMainWordsFound is the schema descriptor for main_words_found field.
	gamesessionDescMainWordsFound := gamesessionFields[7].Descriptor()
	// gamesession.DefaultMainWordsFound holds the default value on creation for the main_words_found field.
	gamesession.DefaultMainWordsFound = gamesessionDescMainWordsFound.Default.(int)
	// gamesessionDescBonusWordsFound is the schema descriptor for bonus_words_found field.
	gamesessionDescBonusWordsFound := gamesessionFields[8].Descriptor()
	// gamesession.DefaultBonusWordsFound holds the default value on creation for the bonus_words_found field.
	gamesession.DefaultBonusWordsFound = gamesessionDescBonusWordsFound.Default.(int)
	// gamesessionDescTerminationReason is the schema descriptor for termination_reason field.
	gamesessionDescTerminationReason := gamesessionFields[9].Descriptor()
	// gamesession.DefaultTerminationReason holds the default value on creation for the termination_reason field.
	gamesession.DefaultTerminationReason = gamesessionDescTerminationReason.Default.(string)
	// gamesessionDescCompleted is the schema descriptor for completed field.
	gamesessionDescCompleted := gamesessionFields[10].Descriptor()
	// gamesession.DefaultCompleted holds the default value on creation for the completed field.
	gamesession.DefaultCompleted = gamesessionDescCompleted.Default.(bool)
	// gamesessionDescStartedAt is the schema descriptor for started_at field.
	gamesessionDescStartedAt := gamesessionFields[11].Descriptor()
	// gamesession.DefaultStartedAt holds the default value on creation for the started_at field.
	gamesession.DefaultStartedAt = gamesessionDescStartedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}
