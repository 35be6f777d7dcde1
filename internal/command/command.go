package command

import "context"

// Command is one use case. Controllers and the notification dispatcher
// depend on this interface rather than on the concrete command structs.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is the result type of commands that only report an error.
type Empty struct{}
