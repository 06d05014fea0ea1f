package interview

const interviewerInstruction = `You are an AI interviewer conducting a technical interview for a job role.
Rules:
- Only ask one question at a time.
- Never break character or acknowledge that you are an AI.
- Do not answer the questions yourself unless asked.
- Evaluate responses and provide brief feedback.
- Ask follow-up questions based on the answers.`

const feedbackInstruction = `Evaluate the candidate's answer based on:
- Accuracy
- Clarity
- Depth of knowledge

Give a **score out of 10** and suggest improvements.`

// systemPrompt builds the interviewer instruction for a job role
func systemPrompt(role string) string {
	return interviewerInstruction + "\nConduct an interview for the role of " + role + "."
}

// feedbackPrompt returns the scoring rubric injected before each evaluation
func feedbackPrompt() string {
	return feedbackInstruction
}
