package main

import "github.com/phrazzld/curricuforge/internal/domain"

func rawForm(subject, duration string) domain.RawCurriculumForm {
	return domain.RawCurriculumForm{Subject: subject, Duration: duration}
}
