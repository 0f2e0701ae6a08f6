package api

import "github.com/phrazzld/curricuforge/internal/domain"

// CurriculumRequest is the JSON body accepted by POST /api/curricula.
// Validation happens in the domain layer so that form and JSON submissions
// obey the same rules.
type CurriculumRequest struct {
	Subject  string `json:"subject"`
	Level    string `json:"level,omitempty"`
	Duration string `json:"duration"`
	Goal     string `json:"goal,omitempty"`
}

// CurriculumResponse is the successful response of POST /api/curricula.
type CurriculumResponse struct {
	Subject    string `json:"subject"`
	Level      string `json:"level"`
	Duration   string `json:"duration"`
	Goal       string `json:"goal,omitempty"`
	Curriculum string `json:"curriculum"`
}

func (r CurriculumRequest) toForm() domain.RawCurriculumForm {
	return domain.RawCurriculumForm{
		Subject:  r.Subject,
		Level:    r.Level,
		Duration: r.Duration,
		Goal:     r.Goal,
	}
}

func curriculumToResponse(req *domain.CurriculumRequest, text string) CurriculumResponse {
	return CurriculumResponse{
		Subject:    req.Subject,
		Level:      req.Level.String(),
		Duration:   req.Duration,
		Goal:       req.Goal,
		Curriculum: text,
	}
}
