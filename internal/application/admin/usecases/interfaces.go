package usecases

import "context"

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type VerifySessionExecutor interface {
	Execute(ctx context.Context, token string) (bool, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, token string) (bool, error)
}

type SweepSessionsExecutor interface {
	Execute(ctx context.Context) (int64, error)
}
