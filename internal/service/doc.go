// Package service provides application-level services for practice
// sessions, daily prompts, reminders, and users. Services orchestrate the
// domain, scoring, generation, and store layers; HTTP concerns stay in
// the api package.
package service
