package repository

import (
	"context"
	"fmt"
	"time"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/repository/models"
	"quiz-brain/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	listQuestionsQuery = `SELECT
		id "id",
		topic "topic",
		question_text "question_text",
		options "options",
		correct_answer "correct_answer",
		explanation "explanation",
		created_at "created_at"
	FROM quiz_questions
	WHERE topic = :1
	ORDER BY id`

	insertQuestionQuery = `INSERT INTO quiz_questions
		(id, topic, question_text, options, correct_answer, explanation, created_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`
)

// QuestionDatabaseAdapter implements domain.QuestionStore on Oracle via sqlx.
type QuestionDatabaseAdapter struct {
	db        *sqlx.DB
	txManager domain.TransactionManager
	now       func() time.Time
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB, txManager domain.TransactionManager) *QuestionDatabaseAdapter {
	return &QuestionDatabaseAdapter{db: db, txManager: txManager, now: time.Now}
}

// ListQuestions implements domain.QuestionStore. IDs are ULIDs, so ordering
// by id is insertion order.
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	var rows []models.QuizQuestion
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, listQuestionsQuery, topic); err != nil {
		return nil, domain.NewStoreUnavailableError("failed to list questions", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, toDomainQuestion(row))
	}
	return questions, nil
}

// AppendQuestions implements domain.QuestionStore. All rows are inserted in
// one transaction.
func (a *QuestionDatabaseAdapter) AppendQuestions(ctx context.Context, topic string, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	err := a.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		for _, q := range questions {
			row := toModelQuestion(topic, q, a.now())
			if _, err := exec.ExecContext(ctx, insertQuestionQuery,
				row.ID, row.Topic, row.QuestionText, row.Options, row.CorrectAnswer, row.Explanation, row.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert question %s: %w", row.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.NewStoreUnavailableError(fmt.Sprintf("failed to append %d questions", len(questions)), err)
	}
	return nil
}

func toModelQuestion(topic string, q domain.Question, now time.Time) models.QuizQuestion {
	return models.QuizQuestion{
		ID:            util.NewULID(),
		Topic:         topic,
		QuestionText:  q.Text,
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   util.StringToNullString(q.Explanation),
		CreatedAt:     now,
	}
}

func toDomainQuestion(row models.QuizQuestion) domain.Question {
	return domain.Question{
		Text:          row.QuestionText,
		Options:       []string(row.Options),
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation.String,
	}
}

var _ domain.QuestionStore = (*QuestionDatabaseAdapter)(nil)
