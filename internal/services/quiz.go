package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"learnbuddy-backend/internal/modelbackend"
	"learnbuddy-backend/internal/models"
	"learnbuddy-backend/internal/repository"
	"learnbuddy-backend/internal/scoring"
)

const routingFailureMessage = "Unable to solve this question. Router could not classify this question into a valid chapter."

var optionLetters = []string{"A", "B", "C", "D"}

type QuizService struct {
	userRepo  *repository.UserRepo
	scoreRepo *repository.ScoreRepo
	backend   *modelbackend.Client
}

func NewQuizService(userRepo *repository.UserRepo, scoreRepo *repository.ScoreRepo, backend *modelbackend.Client) *QuizService {
	return &QuizService{
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
		backend:   backend,
	}
}

// GetQuestion picks the difficulty from the user's current chapter score and
// proxies question generation to the model backend.
func (s *QuizService) GetQuestion(ctx context.Context, email, chapter string) (*models.QuestionResponse, error) {
	if email == "" || chapter == "" {
		return nil, &ValidationError{Message: "email and chapter required"}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	column, ok := scoring.ChapterColumn(chapter)
	if !ok {
		return nil, &ValidationError{Message: "Invalid chapter"}
	}

	scores, err := s.scoreRepo.Get(ctx, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	current, _ := scores.ByColumn(column)
	difficulty := scoring.NextDifficulty(current)

	mcq, err := s.backend.GenerateMCQ(ctx, chapter, difficulty)
	if err != nil {
		log.Printf("mcq backend error: %v", err)
		return nil, &BackendError{Message: "Model backend failed"}
	}

	resp := formatQuestion(mcq, difficulty)
	return &resp, nil
}

// SubmitAnswer applies the grading outcome to the chapter score and recomputes
// the aggregate. Difficulty is echoed by the client (the difficulty it was
// shown) and must be within 1..5.
func (s *QuizService) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	if req.Email == "" || req.Chapter == "" {
		return nil, &ValidationError{Message: "email and chapter required"}
	}
	if req.Difficulty < scoring.MinDifficulty || req.Difficulty > scoring.MaxDifficulty {
		return nil, &ValidationError{Message: "difficulty must be between 1 and 5"}
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	column, ok := scoring.ChapterColumn(req.Chapter)
	if !ok {
		return nil, &ValidationError{Message: "Invalid chapter"}
	}

	newScore, overall, err := s.scoreRepo.ApplyAnswer(ctx, user.ID, column, req.Correct, req.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	return &models.SubmitAnswerResponse{
		Success:         true,
		NewChapterScore: newScore,
		OverallScore:    overall,
	}, nil
}

// SolveQuestion proxies a step-by-step solve for a known chapter. Stateless;
// no user lookup and no score change.
func (s *QuizService) SolveQuestion(ctx context.Context, chapter, question string) (*models.SolveResponse, error) {
	if chapter == "" || question == "" {
		return nil, &ValidationError{Message: "chapter and question required"}
	}

	data, err := s.backend.Solve(ctx, chapter, question)
	if err != nil {
		log.Printf("solve backend error: %v", err)
		return nil, &BackendError{Message: "Model backend failed"}
	}

	return &models.SolveResponse{
		Question:    question,
		Given:       data.Given,
		ToFind:      data.ToFind,
		Solution:    data.Steps,
		FinalAnswer: data.FinalAnswer,
	}, nil
}

// ChatSolve proxies a free-form question; the backend routes it to a chapter
// itself. Backend-declared errors and silent routing failures come back as
// normal responses with status "error" so the client can render them inline.
func (s *QuizService) ChatSolve(ctx context.Context, question string) (*models.ChatResponse, error) {
	if question == "" {
		return nil, &ValidationError{Message: "question required"}
	}

	result, err := s.backend.SolveAuto(ctx, question)
	if err != nil {
		log.Printf("chat backend error: %v", err)
		return nil, &BackendError{Message: "Model backend failed"}
	}

	resp := formatChatResult(question, result)
	return &resp, nil
}

func formatQuestion(mcq *modelbackend.MCQData, difficulty int) models.QuestionResponse {
	options := make([]string, 0, len(optionLetters))
	explanations := make([]string, 0, len(optionLetters))

	for _, letter := range optionLetters {
		options = append(options, fmt.Sprintf("%s. %s", letter, mcq.Options[letter]))

		explanation := mcq.DistractorRationales[letter]
		if letter == mcq.CorrectOption {
			explanation = mcq.AnswerExplanation
		}
		explanations = append(explanations, fmt.Sprintf("%s: %s", letter, explanation))
	}

	return models.QuestionResponse{
		Question:       mcq.Question,
		Options:        options,
		CorrectAnswer:  fmt.Sprintf("%s. %s", mcq.CorrectOption, mcq.Options[mcq.CorrectOption]),
		Explanations:   explanations,
		DifficultyUsed: difficulty,
	}
}

func formatChatResult(question string, result *modelbackend.SolveAutoResult) models.ChatResponse {
	if result.Error != "" && result.Data == nil {
		return models.ChatResponse{
			Question: question,
			Answer:   result.Error,
			Status:   "error",
		}
	}

	if result.Data == nil {
		return models.ChatResponse{
			Question: question,
			Answer:   routingFailureMessage,
			Status:   "error",
		}
	}

	return models.ChatResponse{
		Question:      question,
		RoutedChapter: result.RoutedChapter,
		Adapter:       result.Adapter,
		Given:         result.Data.Given,
		ToFind:        result.Data.ToFind,
		Solution:      result.Data.Steps,
		FinalAnswer:   result.Data.FinalAnswer,
		Status:        "success",
	}
}
