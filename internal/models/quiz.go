package models

type GetQuestionRequest struct {
	Email   string `json:"email"`
	Chapter string `json:"chapter"`
}

// QuestionResponse is the client-facing MCQ shape: options carry their letter
// prefix ("A. ..."), explanations carry theirs ("A: ..."), and the correct
// option's explanation slot holds the model's answer rationale.
type QuestionResponse struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	Explanations   []string `json:"explanations"`
	DifficultyUsed int      `json:"difficulty_used"`
}

type SubmitAnswerRequest struct {
	Email      string `json:"email"`
	Chapter    string `json:"chapter"`
	Correct    bool   `json:"correct"`
	Difficulty int    `json:"difficulty"`
}

type SubmitAnswerResponse struct {
	Success         bool    `json:"success"`
	NewChapterScore float64 `json:"new_chapter_score"`
	OverallScore    float64 `json:"overall_score"`
}

type SolveRequest struct {
	Chapter  string `json:"chapter"`
	Question string `json:"question"`
}

type SolveResponse struct {
	Question    string   `json:"question"`
	Given       string   `json:"given"`
	ToFind      string   `json:"to_find"`
	Solution    []string `json:"solution"`
	FinalAnswer string   `json:"final_answer"`
}

type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse covers both chat outcomes: on success the solution fields are
// populated and Status is "success"; on a routing or backend-declared error
// Answer carries a user-facing message and Status is "error".
type ChatResponse struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer,omitempty"`
	RoutedChapter string   `json:"routed_chapter,omitempty"`
	Adapter       string   `json:"adapter,omitempty"`
	Given         string   `json:"given,omitempty"`
	ToFind        string   `json:"to_find,omitempty"`
	Solution      []string `json:"solution,omitempty"`
	FinalAnswer   string   `json:"final_answer,omitempty"`
	Status        string   `json:"status"`
}

type ScoreResponse struct {
	Score float64 `json:"score"`
}
