// Package service contains the business logic.
//
// It sits between the handler layer and the collaborator clients in
// internal/lib. It receives validated requests from the handler, calls
// the external service and converts client failures into application
// errors.
package service
