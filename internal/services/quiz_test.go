package services

import (
	"reflect"
	"testing"

	"learnbuddy-backend/internal/modelbackend"
)

func TestFormatQuestion(t *testing.T) {
	mcq := &modelbackend.MCQData{
		Question: "What is 2+2?",
		Options: map[string]string{
			"A": "3", "B": "4", "C": "5", "D": "22",
		},
		CorrectOption: "B",
		DistractorRationales: map[string]string{
			"A": "off by one", "C": "off by one", "D": "concatenated digits",
		},
		AnswerExplanation: "2+2 equals 4",
	}

	resp := formatQuestion(mcq, 3)

	wantOptions := []string{"A. 3", "B. 4", "C. 5", "D. 22"}
	if !reflect.DeepEqual(resp.Options, wantOptions) {
		t.Errorf("options = %v, want %v", resp.Options, wantOptions)
	}

	if resp.CorrectAnswer != "B. 4" {
		t.Errorf("correct_answer = %q, want %q", resp.CorrectAnswer, "B. 4")
	}

	// The correct slot carries the answer explanation, the rest their rationale.
	wantExplanations := []string{
		"A: off by one",
		"B: 2+2 equals 4",
		"C: off by one",
		"D: concatenated digits",
	}
	if !reflect.DeepEqual(resp.Explanations, wantExplanations) {
		t.Errorf("explanations = %v, want %v", resp.Explanations, wantExplanations)
	}

	if resp.DifficultyUsed != 3 {
		t.Errorf("difficulty_used = %d, want 3", resp.DifficultyUsed)
	}
}

func TestFormatChatResult(t *testing.T) {
	steps := modelbackend.SolutionSteps{"halve it", "done"}

	tests := []struct {
		name       string
		result     *modelbackend.SolveAutoResult
		wantStatus string
		wantAnswer string
	}{
		{
			"backend-declared error",
			&modelbackend.SolveAutoResult{Error: "no adapter for this topic"},
			"error",
			"no adapter for this topic",
		},
		{
			"silent routing failure",
			&modelbackend.SolveAutoResult{},
			"error",
			routingFailureMessage,
		},
		{
			"success",
			&modelbackend.SolveAutoResult{
				RoutedChapter: "arithmetic",
				Adapter:       "arith-v1",
				Data: &modelbackend.SolveData{
					Given:       "a number 8",
					ToFind:      "half of it",
					Steps:       steps,
					FinalAnswer: "4",
				},
			},
			"success",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := formatChatResult("the question", tc.result)

			if resp.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tc.wantStatus)
			}
			if resp.Answer != tc.wantAnswer {
				t.Errorf("answer = %q, want %q", resp.Answer, tc.wantAnswer)
			}
			if resp.Question != "the question" {
				t.Errorf("question = %q, want it echoed back", resp.Question)
			}

			if tc.wantStatus == "success" {
				if resp.RoutedChapter != "arithmetic" || resp.Adapter != "arith-v1" {
					t.Errorf("routing fields = (%q, %q)", resp.RoutedChapter, resp.Adapter)
				}
				if !reflect.DeepEqual(resp.Solution, []string(steps)) {
					t.Errorf("solution = %v, want %v", resp.Solution, steps)
				}
				if resp.FinalAnswer != "4" {
					t.Errorf("final_answer = %q, want 4", resp.FinalAnswer)
				}
			}
		})
	}
}
