package dto

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MatchResponse is returned by both the manual-entry and upload endpoints.
type MatchResponse struct {
	Success     bool           `json:"success"`
	Profile     StudentProfile `json:"profile"`
	Matched     []MatchResult  `json:"matched"`
	Rejected    []Rejection    `json:"rejected"`
	Stats       SummaryStats   `json:"stats"`
	RawText     string         `json:"raw_text,omitempty"`
	ProcessedAt string         `json:"processed_at,omitempty"`
}

// ScholarshipListResponse is returned by GET /scholarships.
type ScholarshipListResponse struct {
	Success      bool                `json:"success"`
	Scholarships []ScholarshipRecord `json:"scholarships"`
	Total        int                 `json:"total"`
}

// ExamListResponse is returned by GET /exams.
type ExamListResponse struct {
	Success bool         `json:"success"`
	Exams   []ExamRecord `json:"exams"`
}

// ChatResponse is returned by POST /chatbot.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Query    string `json:"query"`
	Response string `json:"response"`
}

// GuidanceContent is one application-guidance article.
type GuidanceContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GuidanceResponse is returned by GET /application-guidance.
type GuidanceResponse struct {
	Success  bool            `json:"success"`
	Guidance GuidanceContent `json:"guidance"`
}
