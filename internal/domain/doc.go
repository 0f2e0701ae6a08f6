// Package domain contains the curriculum request and result types and the
// validation rules applied to submitted forms. It has no dependencies on
// transport or generation backends.
package domain
