package interview

// StartInterviewRequest starts a new interview for a user
type StartInterviewRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// StartInterviewResponse confirms the interview started
type StartInterviewResponse struct {
	Message     string `json:"message"`
	Role        string `json:"role"`
	InterviewID string `json:"interview_id"`
}

// AskQuestionRequest requests the next interview question
type AskQuestionRequest struct {
	UserID string `json:"user_id"`
}

// AskQuestionResponse carries the generated question
type AskQuestionResponse struct {
	Question string `json:"question"`
}

// SubmitAnswerRequest submits a candidate answer for evaluation
type SubmitAnswerRequest struct {
	UserID string `json:"user_id"`
	Answer string `json:"answer"`
}

// SubmitAnswerResponse carries the generated feedback
type SubmitAnswerResponse struct {
	Feedback string `json:"feedback"`
}

// EndInterviewRequest ends a user's interview
type EndInterviewRequest struct {
	UserID string `json:"user_id"`
}

// EndInterviewResponse confirms the interview ended
type EndInterviewResponse struct {
	Message string `json:"message"`
}
