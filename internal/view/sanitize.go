package view

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	curriculumPolicyOnce sync.Once
	curriculumPolicy     *bluemonday.Policy
)

// SanitizeCurriculum makes model output safe to embed in a page. Markup the
// model emits is reduced to the user-generated-content allowlist and
// everything else is escaped.
func SanitizeCurriculum(raw string) template.HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	// #nosec G203 -- output of the bluemonday policy
	return template.HTML(curriculumSanitizer().Sanitize(trimmed))
}

func curriculumSanitizer() *bluemonday.Policy {
	curriculumPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		curriculumPolicy = policy
	})
	return curriculumPolicy
}
