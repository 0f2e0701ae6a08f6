// Package service contains the application use cases. CurriculumService runs
// the curriculum pipeline for one request: validate the submitted fields,
// build the prompt, call the generation client and report a single outcome.
//
// Services receive their collaborators through constructor injection and hold
// no per-request state, so one instance serves concurrent requests.
package service
